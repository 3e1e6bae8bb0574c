package workspace

import (
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/models"
)

// resolveName picks the active sub-project of a multi-app config. Each
// step runs only if the previous one found nothing:
//
//  1. the explicit --project argument
//  2. the first project, in declaration order, whose root contains the
//     working directory
//  3. defaultProject
//
// The returned name is not checked against the projects mapping.
func (d *ProjectDetails) resolveName(doc config.Document) (string, *models.ResolutionError) {
	if name := d.args.Project(); name != "" {
		d.logger.Debug("selected project from arguments", "project", name)
		return name, nil
	}

	if name, ok := d.matchWorkingDirectory(doc); ok {
		d.logger.Debug("selected project containing working directory", "project", name)
		return name, nil
	}

	if def := doc.Get(config.KeyDefaultProject); def.String() != "" {
		d.logger.Debug("selected default project", "project", def.String())
		return def.String(), nil
	}

	return "", models.NewResolutionError(
		models.ErrMultiMissingName,
		"could not determine which project to use: pass --project, run from inside a project root, or set defaultProject",
		nil,
	)
}

// matchWorkingDirectory returns the first project whose declared root
// contains the working directory. Projects without a root never match.
func (d *ProjectDetails) matchWorkingDirectory(doc config.Document) (string, bool) {
	wd := d.workingDirectory
	if wd == "" {
		var err error
		if wd, err = d.fs.Getwd(); err != nil {
			d.logger.Debug("could not get working directory, skipping path match", "error", err)
			return "", false
		}
	}
	wd = filepath.Clean(wd)

	for _, name := range doc.ProjectNames() {
		root := doc.Get(config.Path(config.KeyProjects, name, config.KeyRoot)).String()
		if root == "" {
			continue
		}

		dir := root
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(d.rootDirectory, dir)
		}

		if containsPath(filepath.Clean(dir), wd) {
			return name, true
		}
	}

	return "", false
}

// containsPath reports whether path is dir or lies below it. It compares
// whole path segments, so /ws/app does not contain /ws/app2.
func containsPath(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
