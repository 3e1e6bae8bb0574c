package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/integration"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrIntegrationNotFound is returned by RequireIntegration for names
	// missing from the config.
	ErrIntegrationNotFound = errors.New("integration not found")

	// ErrIntegrationDisabled is returned by RequireIntegration for entries
	// with "enabled": false.
	ErrIntegrationDisabled = errors.New("integration disabled")
)

// IntegrationDescriptors returns every entry of the "integrations" mapping
// in declaration order, disabled ones included.
func (b *base) IntegrationDescriptors() ([]models.IntegrationDescriptor, error) {
	raw, err := b.config.Get(config.KeyIntegrations)
	if err != nil {
		return nil, fmt.Errorf("failed to read integrations: %w", err)
	}

	dir := b.Directory()

	var descriptors []models.IntegrationDescriptor
	raw.ForEach(func(key, value gjson.Result) bool {
		descriptors = append(descriptors, models.IntegrationDescriptor{
			Name:    key.String(),
			Enabled: value.Get("enabled").Type != gjson.False,
			Root:    resolvePath(dir, value.Get("root").String()),
		})
		return true
	})

	return descriptors, nil
}

// Integration looks up a single descriptor by name.
func (b *base) Integration(name string) (models.IntegrationDescriptor, bool, error) {
	descriptors, err := b.IntegrationDescriptors()
	if err != nil {
		return models.IntegrationDescriptor{}, false, err
	}

	for _, d := range descriptors {
		if d.Name == name {
			return d, true, nil
		}
	}
	return models.IntegrationDescriptor{}, false, nil
}

// RequireIntegration is like Integration but fails for absent or disabled entries.
func (b *base) RequireIntegration(name string) (models.IntegrationDescriptor, error) {
	d, found, err := b.Integration(name)
	if err != nil {
		return models.IntegrationDescriptor{}, err
	}
	if !found {
		return models.IntegrationDescriptor{}, fmt.Errorf("%w: %s is not configured for this project", ErrIntegrationNotFound, name)
	}
	if !d.Enabled {
		return models.IntegrationDescriptor{}, fmt.Errorf("%w: %s is disabled for this project", ErrIntegrationDisabled, name)
	}
	return d, nil
}

// Integrations instantiates every enabled integration concurrently. The
// result follows declaration order regardless of completion order. Names
// without a registered constructor are dropped with a warning; any other
// failure aborts the whole call.
func (b *base) Integrations(ctx context.Context) ([]integration.Integration, error) {
	descriptors, err := b.IntegrationDescriptors()
	if err != nil {
		return nil, err
	}

	var enabled []models.IntegrationDescriptor
	for _, d := range descriptors {
		if d.Enabled {
			enabled = append(enabled, d)
		}
	}

	loaded := make([]integration.Integration, len(enabled))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range enabled {
		g.Go(func() error {
			in, err := b.integrations.New(gctx, integration.Options{
				Name:   d.Name,
				Root:   d.Root,
				FS:     b.fs,
				Logger: b.logger.With("integration", d.Name),
			})
			if errors.Is(err, integration.ErrNotFound) {
				b.logger.Warn("integration not found, skipping", "integration", d.Name)
				return nil
			}
			if err != nil {
				return err
			}

			loaded[i] = in
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]integration.Integration, 0, len(loaded))
	for _, in := range loaded {
		if in != nil {
			out = append(out, in)
		}
	}
	return out, nil
}
