// Package integration holds the optional capability modules a project can
// enable in its config ("integrations" mapping) and the static table used
// to instantiate them by name.
package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
)

// ErrNotFound is returned when no constructor is registered for a name.
// Callers enumerating integrations drop such entries instead of failing.
var ErrNotFound = errors.New("integration not found")

// Integration is an instantiated integration bound to a directory.
type Integration interface {
	Name() string
	Root() string

	// Personalize applies app identity to integration-owned files.
	// Implementations only touch files under Root.
	Personalize(ctx context.Context, details models.PersonalizationDetails) error
}

// Options are passed to a constructor.
type Options struct {
	Name   string
	Root   string
	FS     filesystem.FileSystem
	Logger *slog.Logger
}

// Constructor builds an integration.
type Constructor func(ctx context.Context, opts Options) (Integration, error)

// Registry maps integration names to constructors.
type Registry map[string]Constructor

// DefaultRegistry returns the built-in integrations.
func DefaultRegistry() Registry {
	return Registry{
		"capacitor":  newCapacitor,
		"cordova":    newCordova,
		"enterprise": newEnterprise,
	}
}

// Names returns the registered names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New instantiates the integration registered under opts.Name.
func (r Registry) New(ctx context.Context, opts Options) (Integration, error) {
	ctor, ok := r[opts.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, opts.Name)
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	in, err := ctor(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load integration %s: %w", opts.Name, err)
	}
	return in, nil
}

// base carries the fields every built-in integration shares.
type base struct {
	name   string
	root   string
	fs     filesystem.FileSystem
	logger *slog.Logger
}

func newBase(opts Options) base {
	return base{name: opts.Name, root: opts.Root, fs: opts.FS, logger: opts.Logger}
}

func (b base) Name() string { return b.name }
func (b base) Root() string { return b.root }
