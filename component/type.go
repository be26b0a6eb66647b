package component

import (
	"fmt"
	"strings"
)

// Type identifies a level of the component hierarchy.
type Type uint8

// The zero value is Unspecified, which is never a valid component type.
const (
	Unspecified Type = iota
	Group
	Set
	Member
	Section
	Field
)

// Count is the number of valid component types.
const Count = int(Field)

//nolint:gochecknoglobals // closed lookup tables indexed by Type.
var (
	names   = [...]string{"", "group", "set", "member", "section", "field"}
	plurals = [...]string{"", "groups", "sets", "members", "sections", "fields"}
)

// Order returns the component types from shallowest to deepest.
func Order() []Type {
	return []Type{Group, Set, Member, Section, Field}
}

// ParseType returns the type with the given name. Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, typ := range Order() {
		if names[typ] == lower {
			return typ, nil
		}
	}

	return Unspecified, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// IsValid reports whether t is one of the five component types.
func (t Type) IsValid() bool {
	return t >= Group && t <= Field
}

// Index returns the zero-based position of t in Order, or -1 if t is invalid.
func (t Type) Index() int {
	if !t.IsValid() {
		return -1
	}

	return int(t) - 1
}

// Superior returns the type one level shallower than t.
// It returns false for Group and for invalid types.
func (t Type) Superior() (Type, bool) {
	if !t.IsValid() || t == Group {
		return Unspecified, false
	}

	return t - 1, true
}

// Inferior returns the type one level deeper than t.
// It returns false for Field and for invalid types.
func (t Type) Inferior() (Type, bool) {
	if !t.IsValid() || t == Field {
		return Unspecified, false
	}

	return t + 1, true
}

// IsAncestorOf reports whether t is strictly shallower than other.
func (t Type) IsAncestorOf(other Type) bool {
	return t.IsValid() && other.IsValid() && t < other
}

// Plural returns the collection name for t, e.g. "sections".
func (t Type) Plural() string {
	if !t.IsValid() {
		return ""
	}

	return plurals[t]
}

// String returns the lowercase name of t.
func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}

	return names[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t == Unspecified {
		return []byte{}, nil
	}

	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}

	return []byte(names[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value decodes to Unspecified.
func (t *Type) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*t = Unspecified

		return nil
	}

	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
