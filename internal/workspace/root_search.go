package workspace

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/filesystem"
)

// ErrWorkspaceNotFound is returned by FindRoot when no config file exists
// in the start directory or any of its parents.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// FindRoot walks up from startDir (the working directory if empty) to the
// nearest directory holding the project config file.
func FindRoot(fs filesystem.FileSystem, startDir string) (string, error) {
	if startDir == "" {
		cwd, err := fs.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		startDir = cwd
	}

	dir := filepath.Clean(startDir)
	for {
		if fs.Exists(filepath.Join(dir, config.FileName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or its parents", ErrWorkspaceNotFound, config.FileName, startDir)
		}
		dir = parent
	}
}
