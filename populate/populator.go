package populate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/0xalexb/optdef/component"
	"github.com/0xalexb/optdef/registry"
)

// Filter rewrites the working description. Its result replaces the input.
type Filter func(Description) Description

// Hook registers components directly, after the declarative description.
type Hook func(registry.Adder)

// Chain composes filters, applied left to right.
func Chain(filters ...Filter) Filter {
	return func(desc Description) Description {
		for _, filter := range filters {
			if filter != nil {
				desc = filter(desc)
			}
		}

		return desc
	}
}

// MergeFilter returns a Filter that merges overlay into the working description.
func MergeFilter(overlay Description) Filter {
	return func(desc Description) Description {
		return Merge(desc, overlay)
	}
}

type state uint8

const (
	stateIdle state = iota
	statePopulating
	statePopulated
)

// Populator fills a registry from the default groups, filters and hooks.
type Populator struct {
	registry *registry.Registry
	groups   []string
	filters  []Filter
	hooks    []Hook
	logger   *slog.Logger

	mu    sync.Mutex
	state state
}

// NewPopulator creates a Populator. A nil cfg uses the default groups and a
// nil logger falls back to the registry's logger.
func NewPopulator(reg *registry.Registry, cfg *Config, logger *slog.Logger, filters []Filter, hooks []Hook) *Populator {
	if cfg == nil {
		cfg = &Config{DefaultGroups: nil}
	}

	groups := cfg.DefaultGroups
	if groups == nil {
		groups = DefaultGroups()
	}

	if logger == nil {
		logger = reg.Logger()
	}

	return &Populator{
		registry: reg,
		groups:   groups,
		filters:  filters,
		hooks:    hooks,
		logger:   logger,
		mu:       sync.Mutex{},
		state:    stateIdle,
	}
}

// Populate runs once; later and re-entrant calls are no-ops and return false.
func (p *Populator) Populate() bool {
	p.mu.Lock()
	if p.state != stateIdle {
		p.mu.Unlock()
		p.logger.Debug("components already populated")

		return false
	}

	p.state = statePopulating
	p.mu.Unlock()

	desc := DefaultDescription(p.groups)
	for _, filter := range p.filters {
		if filter != nil {
			desc = filter(desc)
		}
	}

	p.register(desc, component.Group, "")

	for _, hook := range p.hooks {
		if hook != nil {
			hook(p.registry)
		}
	}

	p.mu.Lock()
	p.state = statePopulated
	p.mu.Unlock()

	p.logSummary()

	return true
}

// Initialized reports whether Populate has completed.
func (p *Populator) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state == statePopulated
}

// Registry returns the registry being populated.
func (p *Populator) Registry() *registry.Registry {
	return p.registry
}

// register walks nodes depth-first. A rejected component does not stop the
// walk; its children are still registered under its slug.
func (p *Populator) register(nodes []Node, typ component.Type, parent string) {
	childType, hasChildren := typ.Inferior()

	for _, node := range nodes {
		_ = p.registry.Add(node.Slug, typ, node.Attrs, parent)

		if hasChildren {
			p.register(node.Children, childType, node.Slug)

			continue
		}

		if len(node.Children) > 0 {
			p.logger.Warn("children below field ignored",
				slog.String("slug", node.Slug),
				slog.Int("children", len(node.Children)),
			)
		}
	}
}

func (p *Populator) logSummary() {
	attrs := make([]slog.Attr, 0, component.Count+1)
	for _, typ := range component.Order() {
		attrs = append(attrs, slog.Int(typ.Plural(), p.registry.Len(typ)))
	}

	attrs = append(attrs, slog.Int("rejected", len(p.registry.Diagnostics())))

	p.logger.LogAttrs(context.Background(), slog.LevelInfo, "components populated", attrs...)
}
