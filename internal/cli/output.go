package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const formatFlagUsage = "Output format: text, json, yaml, or a Go template (e.g. '{{ .Result.Name | upper }}')"

// render writes data in the requested format. Any format that is not a
// known name is parsed as a Go template with sprig functions.
func render(w io.Writer, format string, data interface{}, text func(io.Writer) error) error {
	switch format {
	case "", formatText:
		return text(w)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	if !strings.Contains(format, "{{") {
		return fmt.Errorf("unknown format %q: expected text, json, yaml or a Go template", format)
	}

	tmpl, err := template.New("format").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return fmt.Errorf("failed to parse format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute format template: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
