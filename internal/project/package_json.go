package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
)

const (
	packageJSONFile = "package.json"
	bowerJSONFile   = "bower.json"
	nodeModulesDir  = "node_modules"
)

// ErrPackageNotFound is returned when a manifest cannot be located.
var ErrPackageNotFound = errors.New("package not found")

// PackageJSONError reports a manifest that exists but cannot be parsed.
type PackageJSONError struct {
	Path string
	Err  error
}

func (e *PackageJSONError) Error() string {
	return fmt.Sprintf("malformed manifest %s: %v", e.Path, e.Err)
}

func (e *PackageJSONError) Unwrap() error {
	return e.Err
}

// PackageJSON returns the project manifest (empty pkgName) or the manifest
// of an installed dependency. A missing manifest yields (nil, nil); a
// malformed one yields a *PackageJSONError.
func (b *base) PackageJSON(pkgName string) (*models.PackageJSON, error) {
	pkg, err := b.RequirePackageJSON(pkgName)
	if errors.Is(err, ErrPackageNotFound) {
		return nil, nil
	}
	return pkg, err
}

// RequirePackageJSON is like PackageJSON but returns ErrPackageNotFound
// when the manifest is missing.
func (b *base) RequirePackageJSON(pkgName string) (*models.PackageJSON, error) {
	path, err := b.manifestPath(pkgName)
	if err != nil {
		return nil, err
	}
	return readManifest(b.fs, path)
}

func (b *base) manifestPath(pkgName string) (string, error) {
	dir := b.Directory()

	if pkgName == "" {
		path := filepath.Join(dir, packageJSONFile)
		if !b.fs.Exists(path) {
			return "", fmt.Errorf("%w: no %s in %s", ErrPackageNotFound, packageJSONFile, dir)
		}
		return path, nil
	}

	path, found := findFileUp(b.fs, dir, filepath.Join(nodeModulesDir, pkgName, packageJSONFile))
	if !found {
		return "", fmt.Errorf("%w: %s is not installed", ErrPackageNotFound, pkgName)
	}
	return path, nil
}

// readManifest parses a package.json-shaped file (bower.json shares the
// dependency fields).
func readManifest(fs filesystem.FileSystem, path string) (*models.PackageJSON, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg models.PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, &PackageJSONError{Path: path, Err: err}
	}

	return &pkg, nil
}

// findFileUp looks for rel in startDir and each of its parents, the way
// Node resolves node_modules.
func findFileUp(fs filesystem.FileSystem, startDir, rel string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		candidate := filepath.Join(dir, rel)
		if fs.Exists(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
