package project

import (
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/config"
)

// InfoItem is one line of project metadata.
type InfoItem struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Info collects display metadata. Missing manifests are reported as
// "not found" rather than failing; malformed ones fail.
func (b *base) Info() ([]InfoItem, error) {
	items := []InfoItem{
		{Key: "type", Value: b.self.Type().PrettyName()},
	}
	if b.name != "" {
		items = append(items, InfoItem{Key: "name", Value: b.name})
	}
	items = append(items,
		InfoItem{Key: "config", Value: b.filePath},
		InfoItem{Key: "directory", Value: b.Directory()},
	)

	proID, err := b.config.GetString(config.KeyProID)
	if err != nil {
		return nil, err
	}
	if proID != "" {
		items = append(items, InfoItem{Key: "pro_id", Value: proID})
	}

	pkg, err := b.PackageJSON("")
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		items = append(items, InfoItem{Key: "package", Value: "not found"})
	} else {
		items = append(items, InfoItem{Key: "package", Value: pkg.Name + "@" + pkg.Version})
	}

	descriptors, err := b.IntegrationDescriptors()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, d := range descriptors {
		if d.Enabled {
			names = append(names, d.Name)
		} else {
			names = append(names, d.Name+" (disabled)")
		}
	}
	if len(names) > 0 {
		items = append(items, InfoItem{Key: "integrations", Value: strings.Join(names, ", ")})
	}

	var capabilities []string
	for _, c := range Capabilities {
		r, err := RunnerFor(b.self, c)
		if err != nil {
			return nil, err
		}
		if r != nil {
			capabilities = append(capabilities, string(c))
		}
	}
	if len(capabilities) > 0 {
		items = append(items, InfoItem{Key: "capabilities", Value: strings.Join(capabilities, ", ")})
	}

	return items, nil
}
