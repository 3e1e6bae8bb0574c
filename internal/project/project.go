// Package project provides the typed project handle produced once a
// workspace has been resolved. Every supported project type is a variant
// built on a shared base; variants differ in how they are detected and in
// which runners they offer.
package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/integration"
	"github.com/jakoblorz/go-projectctx/internal/models"
)

// ErrProIDMissing is returned by RequireProID for unlinked projects.
var ErrProIDMissing = errors.New("project is not linked")

// Project is a resolved, typed project.
type Project interface {
	Type() models.ProjectType

	// Name is the sub-project key; empty for single-app workspaces.
	Name() string
	FilePath() string
	RootDirectory() string
	Directory() string
	Config() *config.Config

	// Detected reports whether this variant's marker is present. It only
	// reads the filesystem.
	Detected() bool

	RequireBuildRunner() (Runner, error)
	RequireServeRunner() (Runner, error)
	RequireGenerateRunner() (Runner, error)
	BuildRunner() (Runner, error)
	ServeRunner() (Runner, error)
	GenerateRunner() (Runner, error)

	RequireProID() (string, error)
	PackageJSON(pkgName string) (*models.PackageJSON, error)
	RequirePackageJSON(pkgName string) (*models.PackageJSON, error)

	IntegrationDescriptors() ([]models.IntegrationDescriptor, error)
	Integrations(ctx context.Context) ([]integration.Integration, error)
	Integration(name string) (models.IntegrationDescriptor, bool, error)
	RequireIntegration(name string) (models.IntegrationDescriptor, error)
	Personalize(ctx context.Context, details models.PersonalizationDetails) error

	Info() ([]InfoItem, error)
}

// Options configure a project handle.
type Options struct {
	FS            filesystem.FileSystem
	RootDirectory string

	// FilePath defaults to RootDirectory/config.FileName.
	FilePath string

	// Name selects a sub-project of a multi-app config.
	Name string

	// ReadOnly makes the config view read-only; used for detection probes,
	// which must not migrate or otherwise write the config file.
	ReadOnly bool

	// Integrations defaults to integration.DefaultRegistry().
	Integrations integration.Registry
	Logger       *slog.Logger
}

// base implements the services shared by all variants. self points back at
// the enclosing variant so shared methods dispatch to its overrides.
type base struct {
	self Project

	fs            filesystem.FileSystem
	rootDirectory string
	filePath      string
	name          string
	config        *config.Config
	integrations  integration.Registry
	logger        *slog.Logger
}

func newBase(opts Options) *base {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	filePath := opts.FilePath
	if filePath == "" {
		filePath = filepath.Join(opts.RootDirectory, config.FileName)
	}

	registry := opts.Integrations
	if registry == nil {
		registry = integration.DefaultRegistry()
	}

	cfg := config.NewConfig(opts.FS, filePath, opts.Name, logger)
	if opts.ReadOnly {
		cfg = config.NewReadOnlyConfig(opts.FS, filePath, opts.Name, logger)
	}

	return &base{
		fs:            opts.FS,
		rootDirectory: opts.RootDirectory,
		filePath:      filePath,
		name:          opts.Name,
		config:        cfg,
		integrations:  registry,
		logger:        logger.With("project", opts.Name),
	}
}

func (b *base) Name() string           { return b.name }
func (b *base) FilePath() string       { return b.filePath }
func (b *base) RootDirectory() string  { return b.rootDirectory }
func (b *base) Config() *config.Config { return b.config }

// Directory is the root directory joined with the config's "root"
// override. An unreadable config falls back to the root directory.
func (b *base) Directory() string {
	root, err := b.config.GetString(config.KeyRoot)
	if err != nil {
		b.logger.Debug("could not read project root, using workspace root", "error", err)
		return b.rootDirectory
	}
	return resolvePath(b.rootDirectory, root)
}

// RequireProID returns the Appflow id or ErrProIDMissing.
func (b *base) RequireProID() (string, error) {
	proID, err := b.config.GetString(config.KeyProID)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", config.KeyProID, err)
	}
	if proID == "" {
		return "", fmt.Errorf("%w: %s is not set in %s, link the project to an app first (ionic link)", ErrProIDMissing, config.KeyProID, b.filePath)
	}
	return proID, nil
}

// resolvePath resolves p against dir; an empty p is dir, an absolute p is kept.
func resolvePath(dir, p string) string {
	switch {
	case p == "":
		return dir
	case filepath.IsAbs(p):
		return filepath.Clean(p)
	default:
		return filepath.Join(dir, p)
	}
}
