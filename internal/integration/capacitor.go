package integration

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/tidwall/sjson"
)

const capacitorConfigFile = "capacitor.config.json"

type capacitor struct {
	base
}

func newCapacitor(_ context.Context, opts Options) (Integration, error) {
	return &capacitor{base: newBase(opts)}, nil
}

// Personalize rewrites appName and appId in capacitor.config.json. A
// missing config file means capacitor was never initialized; nothing to do.
func (c *capacitor) Personalize(ctx context.Context, details models.PersonalizationDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(c.root, capacitorConfigFile)
	if !c.fs.Exists(path) {
		c.logger.Debug("capacitor config not found, skipping personalization", "path", path)
		return nil
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", capacitorConfigFile, err)
	}

	if details.Name != "" {
		if data, err = sjson.SetBytes(data, "appName", details.Name); err != nil {
			return fmt.Errorf("failed to set appName: %w", err)
		}
	}
	if details.PackageID != "" {
		if data, err = sjson.SetBytes(data, "appId", details.PackageID); err != nil {
			return fmt.Errorf("failed to set appId: %w", err)
		}
	}

	if err := c.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", capacitorConfigFile, err)
	}
	return nil
}
