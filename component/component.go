package component

import (
	"fmt"
	"maps"

	"github.com/goccy/go-yaml"
)

// Attributes is the opaque attribute bag of a component.
type Attributes map[string]any

// Component is an immutable node of the hierarchy.
type Component struct {
	slug   string
	typ    Type
	parent string
	attrs  Attributes
}

// New validates and builds a component.
// Any type other than Group requires a non-empty parent slug.
func New(slug string, typ Type, attrs Attributes, parent string) (Component, error) {
	if !typ.IsValid() {
		return Component{}, fmt.Errorf("%w: %s %q", ErrInvalidType, typ, slug)
	}

	if typ != Group && parent == "" {
		return Component{}, fmt.Errorf("%w: %s %q", ErrMissingParent, typ, slug)
	}

	return Component{
		slug:   slug,
		typ:    typ,
		parent: parent,
		attrs:  maps.Clone(attrs),
	}, nil
}

// Slug returns the component slug.
func (c Component) Slug() string {
	return c.slug
}

// Type returns the component type.
func (c Component) Type() Type {
	return c.typ
}

// Parent returns the slug of the parent component, empty for groups.
func (c Component) Parent() string {
	return c.parent
}

// Attrs returns a shallow copy of the attribute bag.
func (c Component) Attrs() Attributes {
	return maps.Clone(c.attrs)
}

// Attr returns a single attribute value.
func (c Component) Attr(key string) (any, bool) {
	value, ok := c.attrs[key]

	return value, ok
}

// IsZero reports whether c is the zero Component.
func (c Component) IsZero() bool {
	return c.typ == Unspecified
}

// MarshalYAML renders the component with a stable key order.
func (c Component) MarshalYAML() (any, error) {
	out := yaml.MapSlice{
		{Key: "slug", Value: c.slug},
		{Key: "type", Value: c.typ.String()},
	}

	if c.parent != "" {
		out = append(out, yaml.MapItem{Key: "parent", Value: c.parent})
	}

	if len(c.attrs) > 0 {
		out = append(out, yaml.MapItem{Key: "attrs", Value: map[string]any(c.attrs)})
	}

	return out, nil
}
