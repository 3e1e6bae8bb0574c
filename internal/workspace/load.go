package workspace

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/project"
)

// ResolutionFailure is returned when a resolution result cannot produce a
// project. It unwraps to each diagnostic.
type ResolutionFailure struct {
	Result *models.ResolutionResult
}

func (e *ResolutionFailure) Error() string {
	if len(e.Result.Errors) == 0 {
		return fmt.Sprintf("failed to resolve project in %s: unsupported project type %q", e.Result.ConfigPath, e.Result.Type)
	}

	messages := make([]string, len(e.Result.Errors))
	for i, err := range e.Result.Errors {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("failed to resolve project in %s: %s", e.Result.ConfigPath, strings.Join(messages, "; "))
}

func (e *ResolutionFailure) Unwrap() []error {
	errs := make([]error, len(e.Result.Errors))
	for i, err := range e.Result.Errors {
		errs[i] = err
	}
	return errs
}

// Project builds the typed project for the resolved result, or returns a
// *ResolutionFailure if the result is not usable.
func (d *ProjectDetails) Project() (project.Project, error) {
	result := d.Result()
	if !result.Usable() {
		return nil, &ResolutionFailure{Result: result}
	}

	p, err := project.New(result.Type, project.Options{
		FS:            d.fs,
		RootDirectory: d.rootDirectory,
		FilePath:      result.ConfigPath,
		Name:          result.Name,
		Integrations:  d.integrations,
		Logger:        d.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// Load resolves rootDirectory and builds its project. The result is
// returned even when building fails so callers can report diagnostics.
func Load(fs filesystem.FileSystem, rootDirectory string, args models.Args, options ...Option) (project.Project, *models.ResolutionResult, error) {
	details := NewProjectDetails(fs, rootDirectory, args, options...)
	p, err := details.Project()
	return p, details.Result(), err
}
