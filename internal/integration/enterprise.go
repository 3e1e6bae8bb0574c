package integration

import (
	"context"

	"github.com/jakoblorz/go-projectctx/internal/models"
)

// enterprise has no app-identity files of its own.
type enterprise struct {
	base
}

func newEnterprise(_ context.Context, opts Options) (Integration, error) {
	return &enterprise{base: newBase(opts)}, nil
}

func (e *enterprise) Personalize(ctx context.Context, _ models.PersonalizationDetails) error {
	return ctx.Err()
}
