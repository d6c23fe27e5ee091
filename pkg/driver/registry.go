package driver

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/coxery/dbgate/pkg/dialect"
	"github.com/coxery/dbgate/pkg/dump"
)

// Config is the explicit construction input for a Registry: which engines
// to expose, and under which ids. Nothing here is read from the
// environment; hosts that want file-driven configuration use
// pkg/driver/config.
type Config struct {
	Engines []EngineConfig
}

// EngineConfig enables one engine.
type EngineConfig struct {
	// ID is the engine id exposed to the host; defaults to the dialect name.
	ID string
	// Dialect is the registered dialect name (see pkg/dialects).
	Dialect string
	// Title overrides the dialect's display title when non-empty.
	Title string
}

// DefaultConfig returns a Config exposing every registered dialect under
// its own name.
func DefaultConfig() Config {
	var cfg Config
	for _, name := range dialect.List() {
		cfg.Engines = append(cfg.Engines, EngineConfig{Dialect: name})
	}
	return cfg
}

// Registry holds one Driver per supported engine id. Immutable after
// NewRegistry; lookups are read-only and side-effect-free.
type Registry struct {
	drivers map[string]*Driver
}

// NewRegistry builds the driver set from an explicit config. The logger may
// be nil. Unknown dialect names and duplicate engine ids fail construction.
func NewRegistry(cfg Config, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	drivers := make(map[string]*Driver, len(cfg.Engines))
	for _, ec := range cfg.Engines {
		d, ok := dialect.Get(ec.Dialect)
		if !ok {
			return nil, &UnknownDialectError{Name: ec.Dialect, Available: dialect.List()}
		}
		id := ec.ID
		if id == "" {
			id = d.Name()
		}
		if _, exists := drivers[id]; exists {
			return nil, fmt.Errorf("duplicate engine id %q", id)
		}
		title := ec.Title
		if title == "" {
			title = d.Title()
		}
		drivers[id] = &Driver{
			engineID: id,
			title:    title,
			dialect:  d,
			dumper:   dump.New(d),
		}
		logger.Debug("registered driver", "engine", id, "dialect", d.Name())
	}
	return &Registry{drivers: drivers}, nil
}

// Get returns the driver for an engine id.
func (r *Registry) Get(engineID string) (*Driver, error) {
	d, ok := r.drivers[engineID]
	if !ok {
		return nil, &UnknownEngineError{ID: engineID, Available: r.List()}
	}
	return d, nil
}

// List returns all engine ids (sorted).
func (r *Registry) List() []string {
	ids := make([]string, 0, len(r.drivers))
	for id := range r.drivers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
