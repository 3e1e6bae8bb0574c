package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/tidwall/sjson"
	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"
)

const (
	defaultVersion     = "0.0.1"
	defaultDescription = "An Ionic project"
)

// Personalize writes the app identity to the project config and manifest,
// then hands the same details to every enabled integration. Integration
// hooks run concurrently and must not depend on each other.
func (b *base) Personalize(ctx context.Context, details models.PersonalizationDetails) error {
	if details.Version == "" {
		details.Version = defaultVersion
	}
	if details.Description == "" {
		details.Description = defaultDescription
	}
	if !semver.IsValid("v" + strings.TrimPrefix(details.Version, "v")) {
		return fmt.Errorf("invalid version %q: expected major.minor.patch", details.Version)
	}

	if details.Name != "" {
		if err := b.config.Set(config.KeyName, details.Name); err != nil {
			return fmt.Errorf("failed to personalize config: %w", err)
		}
	}

	if err := b.personalizeManifest(details); err != nil {
		return err
	}

	integrations, err := b.Integrations(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, in := range integrations {
		g.Go(func() error {
			if err := in.Personalize(gctx, details); err != nil {
				return fmt.Errorf("failed to personalize %s: %w", in.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// personalizeManifest sets name, version and description in package.json
// without reformatting the rest of the file.
func (b *base) personalizeManifest(details models.PersonalizationDetails) error {
	path := filepath.Join(b.Directory(), packageJSONFile)
	if !b.fs.Exists(path) {
		return fmt.Errorf("%w: no %s in %s", ErrPackageNotFound, packageJSONFile, b.Directory())
	}

	data, err := b.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Parse first so a malformed manifest is reported as such, not as an sjson error.
	if _, err := readManifest(b.fs, path); err != nil {
		return err
	}

	fields := []struct {
		key   string
		value string
	}{
		{"name", details.ProjectID},
		{"version", details.Version},
		{"description", details.Description},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if data, err = sjson.SetBytes(data, f.key, f.value); err != nil {
			return fmt.Errorf("failed to set %s in %s: %w", f.key, packageJSONFile, err)
		}
	}

	if err := b.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
