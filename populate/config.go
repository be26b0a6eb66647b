package populate

import (
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyGroupSlug is returned when a default group slug is empty.
var ErrEmptyGroupSlug = errors.New("default group slug must not be empty")

// DefaultGroups returns the group slugs seeded before any filter runs.
func DefaultGroups() []string {
	return []string{
		"dashboard",
		"posts",
		"media",
		"links",
		"pages",
		"comments",
		"theme",
		"plugins",
		"users",
		"management",
		"options",
	}
}

// Config holds the populator settings, read from the optdef section of the config file.
type Config struct {
	// DefaultGroups overrides the seeded group slugs. An explicit empty list seeds nothing.
	DefaultGroups []string `yaml:"default_groups"`
}

// SetDefaults fills DefaultGroups when it was not configured.
func (c *Config) SetDefaults() bool {
	if c.DefaultGroups != nil {
		return false
	}

	c.DefaultGroups = DefaultGroups()

	return true
}

// Validate rejects empty group slugs.
func (c *Config) Validate() error {
	if idx := slices.Index(c.DefaultGroups, ""); idx >= 0 {
		return fmt.Errorf("%w: index %d", ErrEmptyGroupSlug, idx)
	}

	return nil
}
