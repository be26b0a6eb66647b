package registry

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/0xalexb/optdef/component"

	"github.com/goccy/go-yaml"
)

// ErrNotAncestor is returned when the requested parent type is not above the target type.
var ErrNotAncestor = errors.New("parent type is not an ancestor of the target type")

// ErrInvalidQuery is returned when a query object cannot be decoded.
var ErrInvalidQuery = errors.New("invalid query")

// Query selects components by slug and by ancestry.
//
// A zero Type means component.Field. A zero ParentType means the type directly
// above Type, so the default query filters fields by section. For any other
// target the default is not section: a set query defaults to group, a member
// query to set and a section query to member. Set ParentType explicitly to
// filter by a more distant ancestor.
type Query struct {
	Type        component.Type `yaml:"type"`
	Slugs       Slugs          `yaml:"slug"`
	ParentType  component.Type `yaml:"parent_type"`
	ParentSlugs Slugs          `yaml:"parent_slug"`
}

// ParseQuery decodes a query object from YAML or JSON.
// Recognized keys are type, slug, parent_type and parent_slug; others are ignored.
func ParseQuery(data []byte) (Query, error) {
	var query Query

	if len(bytes.TrimSpace(data)) == 0 {
		return query, nil
	}

	err := yaml.Unmarshal(data, &query)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return query, nil
}

func (q Query) withDefaults() Query {
	if q.Type == component.Unspecified {
		q.Type = component.Field
	}

	if q.ParentType == component.Unspecified {
		if superior, ok := q.Type.Superior(); ok {
			q.ParentType = superior
		}
	}

	return q
}

// Query returns the components matching query in registration order.
// No match yields an empty, non-nil slice. An invalid target or parent type
// yields a nil slice and an error, and is logged as a warning.
func (r *Registry) Query(query Query) ([]component.Component, error) {
	query = query.withDefaults()

	if !query.Type.IsValid() {
		return nil, r.warnQuery(query, fmt.Errorf("%w: target %s", component.ErrInvalidType, query.Type))
	}

	byAncestry := query.Type != component.Group && len(query.ParentSlugs) > 0

	if byAncestry {
		if !query.ParentType.IsValid() {
			return nil, r.warnQuery(query, fmt.Errorf("%w: parent %s", component.ErrInvalidType, query.ParentType))
		}

		if !query.ParentType.IsAncestorOf(query.Type) {
			return nil, r.warnQuery(query, fmt.Errorf("%w: %s is not above %s", ErrNotAncestor, query.ParentType, query.Type))
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.collection(query.Type)

	if len(query.Slugs) > 0 {
		results = filterBySlug(results, newSlugSet(query.Slugs))
	}

	if byAncestry && len(results) > 0 {
		results = r.filterByAncestry(newSlugSet(query.ParentSlugs), query.ParentType, results, query.Type)
	}

	if results == nil {
		return []component.Component{}, nil
	}

	return slices.Clone(results), nil
}

// QuerySingle returns the first component matching query.
// The boolean is false when nothing matches or the query is invalid.
func (r *Registry) QuerySingle(query Query) (component.Component, bool, error) {
	results, err := r.Query(query)
	if err != nil {
		return component.Component{}, false, err
	}

	if len(results) == 0 {
		return component.Component{}, false, nil
	}

	return results[0], true, nil
}

func (r *Registry) warnQuery(query Query, err error) error {
	r.logger.Warn("invalid component query",
		slog.String("type", query.Type.String()),
		slog.String("parent_type", query.ParentType.String()),
		slog.String("error", err.Error()),
	)

	return err
}

func filterBySlug(haystack []component.Component, slugs slugSet) []component.Component {
	results := make([]component.Component, 0, len(haystack))

	for _, comp := range haystack {
		if slugs.has(comp.Slug()) {
			results = append(results, comp)
		}
	}

	return results
}

// filterByAncestry keeps the components of haystack that descend from one of
// ancestors at level ancestorType. While ancestorType is more than one level
// above haystackType, the whole collection of the next level down is filtered
// recursively and its slugs become the new ancestors.
//
// ancestorType must be strictly above haystackType. Must be called with r.mu held.
func (r *Registry) filterByAncestry(
	ancestors slugSet,
	ancestorType component.Type,
	haystack []component.Component,
	haystackType component.Type,
) []component.Component {
	for {
		current, _ := ancestorType.Inferior()
		if current == haystackType {
			break
		}

		narrowed := r.filterByAncestry(ancestors, ancestorType, r.collection(current), current)

		ancestors = make(slugSet, len(narrowed))
		for _, comp := range narrowed {
			ancestors[comp.Slug()] = struct{}{}
		}

		ancestorType = current
	}

	results := make([]component.Component, 0, len(haystack))

	for _, comp := range haystack {
		if ancestors.has(comp.Parent()) {
			results = append(results, comp)
		}
	}

	return results
}
