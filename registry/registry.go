package registry

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/0xalexb/optdef/component"
)

// Adder registers components. It is the view handed to direct-registration hooks.
type Adder interface {
	Add(slug string, typ component.Type, attrs component.Attributes, parent string) error
}

// Registry holds every registered component.
type Registry struct {
	mu          sync.RWMutex
	collections [component.Count][]component.Component
	diagnostics []error
	logger      *slog.Logger
}

var _ Adder = (*Registry)(nil)

// New creates an empty Registry. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		mu:          sync.RWMutex{},
		collections: [component.Count][]component.Component{},
		diagnostics: nil,
		logger:      logger,
	}
}

// Logger returns the logger the registry reports warnings to.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// Add appends a component to the collection of its type.
// Slugs are not deduplicated. An invalid component is not stored; the error is
// logged as a warning, recorded in Diagnostics and returned.
func (r *Registry) Add(slug string, typ component.Type, attrs component.Attributes, parent string) error {
	comp, err := component.New(slug, typ, attrs, parent)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.diagnostics = append(r.diagnostics, err)
		r.logger.Warn("component rejected",
			slog.String("slug", slug),
			slog.String("type", typ.String()),
			slog.String("parent", parent),
			slog.String("error", err.Error()),
		)

		return err
	}

	idx := typ.Index()
	r.collections[idx] = append(r.collections[idx], comp)

	r.logger.Debug("component added",
		slog.String("slug", slug),
		slog.String("type", typ.String()),
		slog.String("parent", parent),
	)

	return nil
}

// Components returns a snapshot of the collection for typ in registration order.
// It returns nil for an invalid type.
func (r *Registry) Components(typ component.Type) []component.Component {
	if !typ.IsValid() {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.collections[typ.Index()])
}

// Len returns the number of components registered for typ.
func (r *Registry) Len(typ component.Type) int {
	if !typ.IsValid() {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.collections[typ.Index()])
}

// Diagnostics returns the errors of every rejected registration, oldest first.
func (r *Registry) Diagnostics() []error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.diagnostics)
}

// collection must be called with r.mu held.
func (r *Registry) collection(typ component.Type) []component.Component {
	return r.collections[typ.Index()]
}
