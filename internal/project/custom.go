package project

import (
	"github.com/jakoblorz/go-projectctx/internal/models"
)

// customProject is a user-managed project: no runners, never detected.
type customProject struct {
	*base
}

func newCustom(b *base) Project {
	p := &customProject{base: b}
	b.self = p
	return p
}

func (p *customProject) Type() models.ProjectType {
	return models.ProjectTypeCustom
}

func (p *customProject) Detected() bool {
	return false
}
