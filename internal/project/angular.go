package project

import (
	"github.com/jakoblorz/go-projectctx/internal/models"
)

// angularMarker is the dependency that identifies an Ionic Angular project.
const angularMarker = "@ionic/angular"

// angularProject delegates to the Angular CLI.
type angularProject struct {
	*base
}

func newAngular(b *base) Project {
	p := &angularProject{base: b}
	b.self = p
	return p
}

func (p *angularProject) Type() models.ProjectType {
	return models.ProjectTypeAngular
}

func (p *angularProject) Detected() bool {
	return p.hasDependency(angularMarker)
}

func (p *angularProject) RequireBuildRunner() (Runner, error) {
	return p.newRunner(CapabilityBuild, "ng", "build"), nil
}

func (p *angularProject) RequireServeRunner() (Runner, error) {
	return p.newRunner(CapabilityServe, "ng", "serve"), nil
}

func (p *angularProject) RequireGenerateRunner() (Runner, error) {
	return p.newRunner(CapabilityGenerate, "ng", "generate"), nil
}
