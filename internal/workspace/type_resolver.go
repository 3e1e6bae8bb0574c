package workspace

import (
	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/project"
	"github.com/tidwall/gjson"
)

// resolveType determines the project type of a (sub-)config. A declared
// string "type" wins; otherwise each type in priority order is probed and
// the first detected one is used.
//
// An undeclared type that is outside the supported set is still returned so
// callers can display it, together with ErrInvalidProjectType.
func (d *ProjectDetails) resolveType(sub gjson.Result, name string) (models.ProjectType, *models.ResolutionError) {
	declared := sub.Get(config.KeyType)
	if declared.Type == gjson.String && declared.String() != "" {
		projectType := models.ProjectType(declared.String())
		if !projectType.IsValid() {
			_, err := models.ParseProjectType(declared.String())
			return projectType, models.NewResolutionError(
				models.ErrInvalidProjectType,
				"unsupported project type "+declared.String(),
				err,
			)
		}

		d.logger.Debug("using declared project type", "project", name, "type", projectType)
		return projectType, nil
	}

	if projectType, ok := d.detectType(name); ok {
		return projectType, nil
	}

	return "", models.NewResolutionError(
		models.ErrMissingProjectType,
		"could not determine project type: set \"type\" in "+config.FileName,
		nil,
	)
}

// detectType probes the priority list sequentially; order is the tie-break.
func (d *ProjectDetails) detectType(name string) (models.ProjectType, bool) {
	for _, projectType := range d.typePriority {
		p, err := project.New(projectType, project.Options{
			FS:            d.fs,
			RootDirectory: d.rootDirectory,
			FilePath:      d.ConfigPath(),
			Name:          name,
			ReadOnly:      true,
			Logger:        d.logger,
		})
		if err != nil {
			d.logger.Debug("skipping type without a project variant", "type", projectType, "error", err)
			continue
		}

		if p.Detected() {
			d.logger.Debug("detected project type", "project", name, "type", projectType)
			return projectType, true
		}
	}

	return "", false
}
