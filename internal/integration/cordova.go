package integration

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"regexp"

	"github.com/jakoblorz/go-projectctx/internal/models"
)

const cordovaConfigFile = "config.xml"

var (
	cordovaNameRegex     = regexp.MustCompile(`<name>[^<]*</name>`)
	cordovaWidgetIDRegex = regexp.MustCompile(`(<widget\b[^>]*?\bid=")[^"]*(")`)
)

type cordova struct {
	base
}

func newCordova(_ context.Context, opts Options) (Integration, error) {
	return &cordova{base: newBase(opts)}, nil
}

// Personalize rewrites <name> and the widget id in config.xml without
// reformatting the file.
func (c *cordova) Personalize(ctx context.Context, details models.PersonalizationDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(c.root, cordovaConfigFile)
	if !c.fs.Exists(path) {
		c.logger.Debug("cordova config not found, skipping personalization", "path", path)
		return nil
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cordovaConfigFile, err)
	}

	if details.Name != "" {
		name := []byte("<name>" + html.EscapeString(details.Name) + "</name>")
		data = cordovaNameRegex.ReplaceAllLiteral(data, name)
	}
	if details.PackageID != "" {
		id := html.EscapeString(details.PackageID)
		data = cordovaWidgetIDRegex.ReplaceAllFunc(data, func(match []byte) []byte {
			groups := cordovaWidgetIDRegex.FindSubmatch(match)
			out := append([]byte{}, groups[1]...)
			out = append(out, id...)
			return append(out, groups[2]...)
		})
	}

	if err := c.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cordovaConfigFile, err)
	}
	return nil
}
