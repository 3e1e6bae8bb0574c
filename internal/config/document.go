// Package config reads, classifies and writes the project config file.
//
// The file is JSON (JSONC is tolerated on read). A document is either a
// single-app config, whose top level describes one project, or a
// multi-app config, whose "projects" object maps names to single-app
// configs. Reads go through gjson so that object keys keep their
// declaration order; writes go through sjson so that untouched parts of
// the file are preserved.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

// FileName is the project config file looked up at the workspace root.
const FileName = "ionic.config.json"

// Well-known keys.
const (
	KeyName           = "name"
	KeyType           = "type"
	KeyRoot           = "root"
	KeyProID          = "pro_id"
	KeyLegacyAppID    = "app_id"
	KeyIntegrations   = "integrations"
	KeyProjects       = "projects"
	KeyDefaultProject = "defaultProject"
)

// ErrInvalidProjectFile is wrapped by every Load failure.
var ErrInvalidProjectFile = errors.New("invalid project file")

// Shape is the structural classification of a config document.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSingle
	ShapeMulti
)

func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Document is a normalized config file: valid JSON with legacy fields migrated.
type Document []byte

// Load reads the config file at path, strips JSONC comments and trailing
// commas, and runs the normalization pass. Any failure wraps
// ErrInvalidProjectFile.
func Load(fs filesystem.FileSystem, path string) (Document, error) {
	doc, _, err := load(fs, path)
	return doc, err
}

func load(fs filesystem.FileSystem, path string) (Document, bool, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to read %s: %w", ErrInvalidProjectFile, path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrInvalidProjectFile, path, err)
	}

	doc, changed := Normalize(doc)
	return doc, changed, nil
}

// Parse converts JSONC bytes to a Document without normalizing it.
func Parse(data []byte) (Document, error) {
	stripped := jsonc.ToJSON(data)
	if len(strings.TrimSpace(string(stripped))) == 0 {
		return nil, errors.New("empty document")
	}
	if !gjson.ValidBytes(stripped) {
		return nil, errors.New("malformed JSON")
	}
	return Document(stripped), nil
}

// Classify reports the document shape from structural predicates only:
// multi iff "projects" is an object, single iff the root is an object
// without "projects", unknown otherwise.
func Classify(doc Document) Shape {
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return ShapeUnknown
	}

	projects := root.Get(KeyProjects)
	switch {
	case !projects.Exists():
		return ShapeSingle
	case projects.IsObject():
		return ShapeMulti
	default:
		return ShapeUnknown
	}
}

// Get returns the value at a gjson path.
func (d Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d, path)
}

// ProjectNames returns the keys of the "projects" object in declaration order.
func (d Document) ProjectNames() []string {
	var names []string
	d.Get(KeyProjects).ForEach(func(key, value gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	return names
}

// Project returns the sub-config for name and whether it exists as an object.
func (d Document) Project(name string) (gjson.Result, bool) {
	sub := d.Get(ProjectPrefix(name))
	return sub, sub.IsObject()
}

// Path joins raw keys into a gjson/sjson path, escaping special characters.
func Path(keys ...string) string {
	escaped := make([]string, len(keys))
	for i, key := range keys {
		escaped[i] = gjson.Escape(key)
	}
	return strings.Join(escaped, ".")
}

// ProjectPrefix is the path of a named sub-project inside a multi-app document.
func ProjectPrefix(name string) string {
	return Path(KeyProjects, name)
}

// Normalize applies the one-time legacy migrations and reports whether the
// document changed. It is idempotent.
//
// Legacy configs carried the Appflow id as "app_id"; a non-empty value is
// moved to "pro_id". Multi-app documents are migrated per sub-project.
func Normalize(doc Document) (Document, bool) {
	switch Classify(doc) {
	case ShapeSingle:
		return migrateProID(doc, "")
	case ShapeMulti:
		changed := false
		for _, name := range doc.ProjectNames() {
			var c bool
			doc, c = migrateProID(doc, ProjectPrefix(name))
			changed = changed || c
		}
		return doc, changed
	default:
		return doc, false
	}
}

func migrateProID(doc Document, prefix string) (Document, bool) {
	legacy := doc.Get(joinPath(prefix, KeyLegacyAppID))
	if !legacy.Exists() || legacy.String() == "" {
		return doc, false
	}

	out, err := sjson.SetBytes(doc, joinPath(prefix, KeyProID), legacy.String())
	if err != nil {
		return doc, false
	}
	out, err = sjson.DeleteBytes(out, joinPath(prefix, KeyLegacyAppID))
	if err != nil {
		return doc, false
	}
	return Document(out), true
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
