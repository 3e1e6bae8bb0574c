// Package workspace resolves the project context of a root directory: its
// shape (single-app, multi-app or unknown), the active sub-project and the
// project type. Resolution never fails; problems are collected as
// diagnostics on the result.
package workspace

import (
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/integration"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/project"
	"github.com/tidwall/gjson"
)

// ProjectDetails resolves the workspace at a root directory once per
// invocation. It is not safe for concurrent use.
type ProjectDetails struct {
	fs            filesystem.FileSystem
	rootDirectory string
	args          models.Args

	workingDirectory string
	typePriority     []models.ProjectType
	integrations     integration.Registry
	logger           *slog.Logger

	result *models.ResolutionResult
}

// Option configures resolution behavior.
type Option func(*ProjectDetails)

// WithLogger sets the logger used for resolution debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *ProjectDetails) {
		d.logger = logger
	}
}

// WithTypePriority overrides the order in which project types are probed
// when a config does not declare one.
func WithTypePriority(priority ...models.ProjectType) Option {
	return func(d *ProjectDetails) {
		d.typePriority = append([]models.ProjectType(nil), priority...)
	}
}

// WithWorkingDirectory overrides the directory used for path-based
// sub-project selection. Defaults to the filesystem's working directory.
func WithWorkingDirectory(dir string) Option {
	return func(d *ProjectDetails) {
		d.workingDirectory = dir
	}
}

// WithIntegrations sets the integration registry handed to loaded projects.
func WithIntegrations(registry integration.Registry) Option {
	return func(d *ProjectDetails) {
		d.integrations = registry
	}
}

// NewProjectDetails creates a resolver for rootDirectory.
func NewProjectDetails(fs filesystem.FileSystem, rootDirectory string, args models.Args, options ...Option) *ProjectDetails {
	d := &ProjectDetails{
		fs:            fs,
		rootDirectory: filepath.Clean(rootDirectory),
		args:          args,
		typePriority:  project.DefaultTypePriority,
		logger:        slog.Default(),
	}

	for _, option := range options {
		option(d)
	}

	return d
}

// RootDirectory returns the workspace root.
func (d *ProjectDetails) RootDirectory() string {
	return d.rootDirectory
}

// ConfigPath returns the path of the project config file.
func (d *ProjectDetails) ConfigPath() string {
	return filepath.Join(d.rootDirectory, config.FileName)
}

// Result resolves the workspace on first call and returns the same result
// on every later call without touching the filesystem again.
func (d *ProjectDetails) Result() *models.ResolutionResult {
	if d.result == nil {
		d.result = d.determine()
	}
	return d.result
}

func (d *ProjectDetails) determine() *models.ResolutionResult {
	result := &models.ResolutionResult{
		Context:    models.ContextUnknown,
		ConfigPath: d.ConfigPath(),
	}

	doc, err := config.Load(d.fs, result.ConfigPath)
	if err != nil {
		d.logger.Debug("could not load project config", "path", result.ConfigPath, "error", err)
		result.Errors = append(result.Errors, models.NewResolutionError(
			models.ErrInvalidProjectFile,
			"could not read project config "+result.ConfigPath,
			err,
		))
		return result
	}
	result.Config = doc

	shape := config.Classify(doc)
	d.logger.Debug("classified project config", "path", result.ConfigPath, "shape", shape)

	switch shape {
	case config.ShapeSingle:
		result.Context = models.ContextApp
		d.applyType(result, gjson.ParseBytes(doc), "")

	case config.ShapeMulti:
		result.Context = models.ContextMultiApp

		name, nameErr := d.resolveName(doc)
		if nameErr != nil {
			result.Errors = append(result.Errors, nameErr)
			break
		}
		result.Name = name

		sub, ok := doc.Project(name)
		if !ok {
			result.Errors = append(result.Errors, models.NewResolutionError(
				models.ErrMultiMissingConfig,
				"project "+name+" is not configured under projects",
				nil,
			))
			break
		}

		d.applyType(result, sub, name)
	}

	d.logger.Debug("resolved project context",
		"context", result.Context,
		"name", result.Name,
		"type", result.Type,
		"errors", len(result.Errors),
	)

	return result
}

func (d *ProjectDetails) applyType(result *models.ResolutionResult, sub gjson.Result, name string) {
	projectType, typeErr := d.resolveType(sub, name)
	result.Type = projectType
	if typeErr != nil {
		result.Errors = append(result.Errors, typeErr)
	}
}
