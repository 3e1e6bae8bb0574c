package project

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-projectctx/internal/models"
)

// ErrUnsupportedProjectType is returned by New for types without a
// constructor. Resolution validates types first, so this is a programming error.
var ErrUnsupportedProjectType = errors.New("unsupported project type")

// DefaultTypePriority is the order in which types are probed when a config
// does not declare one. Earlier entries win when several markers are present.
var DefaultTypePriority = []models.ProjectType{
	models.ProjectTypeAngular,
	models.ProjectTypeIonicAngular,
	models.ProjectTypeIonic1,
	models.ProjectTypeCustom,
}

type constructor func(b *base) Project

var constructors = map[models.ProjectType]constructor{
	models.ProjectTypeAngular:      newAngular,
	models.ProjectTypeIonicAngular: newIonicAngular,
	models.ProjectTypeIonic1:       newIonic1,
	models.ProjectTypeCustom:       newCustom,
}

// New creates the project variant for projectType.
func New(projectType models.ProjectType, opts Options) (Project, error) {
	ctor, ok := constructors[projectType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProjectType, projectType)
	}
	return ctor(newBase(opts)), nil
}
