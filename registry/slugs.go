package registry

import (
	"fmt"
	"strings"
)

// Slugs is a set of slugs used as a query filter. An empty Slugs means no filter.
//
// In YAML it accepts either a scalar or a sequence:
//
//	slug: title
//	slug: [title, excerpt]
type Slugs []string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (s *Slugs) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*s = nil
	case string:
		*s = fromScalar(value)
	case []any:
		out := make(Slugs, 0, len(value))

		for _, item := range value {
			if item == nil {
				continue
			}

			out = append(out, fmt.Sprint(item))
		}

		*s = out
	case map[string]any:
		return fmt.Errorf("%w: slugs must be a string or a list", ErrInvalidQuery)
	default:
		*s = fromScalar(fmt.Sprint(value))
	}

	return nil
}

func fromScalar(value string) Slugs {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	return Slugs{value}
}

type slugSet map[string]struct{}

func newSlugSet(slugs []string) slugSet {
	set := make(slugSet, len(slugs))
	for _, slug := range slugs {
		set[slug] = struct{}{}
	}

	return set
}

func (s slugSet) has(slug string) bool {
	_, ok := s[slug]

	return ok
}
