package project

import (
	"errors"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/models"
)

// ionic1Marker is looked up in the legacy bower.json, not package.json.
const ionic1Marker = "ionic"

// ionic1Project is a legacy Ionic 1 app. It has no generators.
type ionic1Project struct {
	*base
}

func newIonic1(b *base) Project {
	p := &ionic1Project{base: b}
	b.self = p
	return p
}

func (p *ionic1Project) Type() models.ProjectType {
	return models.ProjectTypeIonic1
}

func (p *ionic1Project) Detected() bool {
	path := filepath.Join(p.Directory(), bowerJSONFile)
	if !p.fs.Exists(path) {
		return false
	}

	bower, err := readManifest(p.fs, path)
	if err != nil {
		var malformed *PackageJSONError
		if errors.As(err, &malformed) {
			p.logger.Debug("ignoring malformed manifest during detection", "path", path, "error", err)
		}
		return false
	}
	return bower.HasDependency(ionic1Marker)
}

func (p *ionic1Project) RequireBuildRunner() (Runner, error) {
	return p.newRunner(CapabilityBuild, "ionic-v1", "build"), nil
}

func (p *ionic1Project) RequireServeRunner() (Runner, error) {
	return p.newRunner(CapabilityServe, "ionic-v1", "serve"), nil
}
