package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrReadOnly is returned by writes through a read-only view.
var ErrReadOnly = errors.New("config is read-only")

// Config is a scoped read/write view over the physical config file.
//
// A Config created for a named sub-project reads and writes under
// "projects.<name>"; an unnamed Config addresses the top level. Several
// views may share the same file. Every access re-reads the file, so a
// write through one view is visible to all others.
type Config struct {
	fs     filesystem.FileSystem
	path   string
	name   string
	prefix string
	logger *slog.Logger

	readOnly bool
}

// NewConfig creates a view over the config file at path. An empty name
// selects the top level.
func NewConfig(fs filesystem.FileSystem, path, name string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Config{fs: fs, path: path, name: name, logger: logger}
	if name != "" {
		c.prefix = ProjectPrefix(name)
	}
	return c
}

// NewReadOnlyConfig is like NewConfig but never touches the file: the
// normalization pass is applied in memory only and writes fail with
// ErrReadOnly.
func NewReadOnlyConfig(fs filesystem.FileSystem, path, name string, logger *slog.Logger) *Config {
	c := NewConfig(fs, path, name, logger)
	c.readOnly = true
	return c
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// Load reads and normalizes the whole document. If normalization changed
// anything, the migrated document is written back so the migration runs
// exactly once per file.
func (c *Config) Load() (Document, error) {
	doc, changed, err := load(c.fs, c.path)
	if err != nil {
		return nil, err
	}

	if changed && !c.readOnly {
		c.logger.Debug("migrated legacy config fields", "path", c.path, "project", c.name)
		if err := c.write(doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Raw returns the scoped object.
func (c *Config) Raw() (gjson.Result, error) {
	doc, err := c.Load()
	if err != nil {
		return gjson.Result{}, err
	}
	if c.prefix == "" {
		return gjson.ParseBytes(doc), nil
	}
	return doc.Get(c.prefix), nil
}

// Get returns the value at key (a path built with Path) inside the scope.
func (c *Config) Get(key string) (gjson.Result, error) {
	doc, err := c.Load()
	if err != nil {
		return gjson.Result{}, err
	}
	return doc.Get(c.scoped(key)), nil
}

// GetString returns the string at key, or "" if it is absent or not a string.
func (c *Config) GetString(key string) (string, error) {
	value, err := c.Get(key)
	if err != nil {
		return "", err
	}
	if value.Type != gjson.String {
		return "", nil
	}
	return value.String(), nil
}

// Set writes value at key inside the scope.
func (c *Config) Set(key string, value interface{}) error {
	doc, err := c.Load()
	if err != nil {
		return err
	}

	out, err := sjson.SetBytes(doc, c.scoped(key), value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return c.write(Document(out))
}

// Unset removes key from the scope. Removing an absent key is a no-op.
func (c *Config) Unset(key string) error {
	doc, err := c.Load()
	if err != nil {
		return err
	}

	if !doc.Get(c.scoped(key)).Exists() {
		return nil
	}

	out, err := sjson.DeleteBytes(doc, c.scoped(key))
	if err != nil {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}

	return c.write(Document(out))
}

func (c *Config) scoped(key string) string {
	return joinPath(c.prefix, key)
}

func (c *Config) write(doc Document) error {
	if c.readOnly {
		return fmt.Errorf("%w: %s", ErrReadOnly, c.path)
	}
	if err := c.fs.WriteFile(c.path, pretty.Pretty(doc), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return nil
}
