package project

import (
	"github.com/jakoblorz/go-projectctx/internal/models"
)

const ionicAngularMarker = "ionic-angular"

// ionicAngularProject is an Ionic 2/3 app built with @ionic/app-scripts.
type ionicAngularProject struct {
	*base
}

func newIonicAngular(b *base) Project {
	p := &ionicAngularProject{base: b}
	b.self = p
	return p
}

func (p *ionicAngularProject) Type() models.ProjectType {
	return models.ProjectTypeIonicAngular
}

func (p *ionicAngularProject) Detected() bool {
	return p.hasDependency(ionicAngularMarker)
}

func (p *ionicAngularProject) RequireBuildRunner() (Runner, error) {
	return p.newRunner(CapabilityBuild, "ionic-app-scripts", "build"), nil
}

func (p *ionicAngularProject) RequireServeRunner() (Runner, error) {
	return p.newRunner(CapabilityServe, "ionic-app-scripts", "serve"), nil
}

func (p *ionicAngularProject) RequireGenerateRunner() (Runner, error) {
	return p.newRunner(CapabilityGenerate, "ionic-app-scripts", "generate"), nil
}
