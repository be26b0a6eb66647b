// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for path navigation. The parser converts colon-separated
// paths (e.g., "components:posts") to YAML path format (e.g., "$.components.posts")
// internally. A missing path wraps config.ErrSectionNotFound so that
// config.OptionalProvider can fall back to defaults.
//
// Usage:
//
//	parser := yaml.NewParser(goyaml.Strict())
//	var cfg populate.Config
//	err := parser.Parse(data, &cfg, "optdef")
package yaml
