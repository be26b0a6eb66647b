package populate

import (
	"errors"
	"fmt"
	"maps"

	"github.com/0xalexb/optdef/component"

	"github.com/goccy/go-yaml"
)

// ErrMalformedDescription is returned when a description node is not a mapping.
var ErrMalformedDescription = errors.New("malformed component description")

// Node is one component of a Description together with its children.
type Node struct {
	Slug     string
	Attrs    component.Attributes
	Children []Node
}

// Description is an ordered forest of groups. Node order is registration order.
type Description []Node

// DefaultDescription returns one childless group per slug.
func DefaultDescription(groups []string) Description {
	desc := make(Description, 0, len(groups))
	for _, slug := range groups {
		desc = append(desc, Node{Slug: slug, Attrs: nil, Children: nil})
	}

	return desc
}

func (d Description) index(slug string) int {
	for i, node := range d {
		if node.Slug == slug {
			return i
		}
	}

	return -1
}

// Merge overlays overlay onto base and returns a new Description.
// Nodes are matched by slug at each level: attributes of overlay win and
// children are merged recursively. Unmatched overlay nodes are appended.
// Neither input is modified.
func Merge(base, overlay Description) Description {
	merged := base.clone()

	for _, node := range overlay {
		idx := merged.index(node.Slug)
		if idx < 0 {
			merged = append(merged, node.clone())

			continue
		}

		existing := merged[idx]

		attrs := maps.Clone(existing.Attrs)
		if len(node.Attrs) > 0 {
			if attrs == nil {
				attrs = make(component.Attributes, len(node.Attrs))
			}

			maps.Copy(attrs, node.Attrs)
		}

		merged[idx] = Node{
			Slug:     existing.Slug,
			Attrs:    attrs,
			Children: Merge(existing.Children, node.Children),
		}
	}

	return merged
}

func (d Description) clone() Description {
	if d == nil {
		return nil
	}

	out := make(Description, 0, len(d))
	for _, node := range d {
		out = append(out, node.clone())
	}

	return out
}

func (n Node) clone() Node {
	return Node{
		Slug:     n.Slug,
		Attrs:    maps.Clone(n.Attrs),
		Children: Description(n.Children).clone(),
	}
}

// UnmarshalYAML decodes a mapping of group slugs, keeping document order.
func (d *Description) UnmarshalYAML(data []byte) error {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("decoding description: %w", err)
	}

	level, err := asMapping(raw, "description")
	if err != nil {
		return err
	}

	nodes, err := decodeLevel(level, component.Group)
	if err != nil {
		return err
	}

	*d = nodes

	return nil
}

func decodeLevel(level yaml.MapSlice, typ component.Type) (Description, error) {
	nodes := make(Description, 0, len(level))

	for _, item := range level {
		node, err := decodeNode(fmt.Sprint(item.Key), item.Value, typ)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func decodeNode(slug string, value any, typ component.Type) (Node, error) {
	node := Node{Slug: slug, Attrs: nil, Children: nil}

	body, err := asMapping(value, fmt.Sprintf("%s %q", typ, slug))
	if err != nil {
		return Node{}, err
	}

	childType, hasChildren := typ.Inferior()

	for _, item := range body {
		key := fmt.Sprint(item.Key)

		if hasChildren && key == childType.Plural() {
			children, err := asMapping(item.Value, fmt.Sprintf("%s of %s %q", key, typ, slug))
			if err != nil {
				return Node{}, err
			}

			node.Children, err = decodeLevel(children, childType)
			if err != nil {
				return Node{}, err
			}

			continue
		}

		if node.Attrs == nil {
			node.Attrs = make(component.Attributes, len(body))
		}

		node.Attrs[key] = plain(item.Value)
	}

	return node, nil
}

// asMapping accepts a null value as an empty mapping.
func asMapping(value any, what string) (yaml.MapSlice, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return typed, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a mapping, got %T", ErrMalformedDescription, what, value)
	}
}

// plain converts ordered maps into regular maps so attributes are easy to consume.
func plain(value any) any {
	switch typed := value.(type) {
	case yaml.MapSlice:
		out := make(map[string]any, len(typed))
		for _, item := range typed {
			out[fmt.Sprint(item.Key)] = plain(item.Value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = plain(item)
		}

		return out
	default:
		return value
	}
}
