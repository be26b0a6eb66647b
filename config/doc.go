// Package config loads the optdef configuration file.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a target, with path navigation support
//   - DataFetcher: retrieves raw config data (file, static bytes, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// A single YAML file typically carries both the populator settings and the
// declarative component description, each selected by path:
//
//	optdef:
//	  default_groups: [posts, pages]
//	components:
//	  posts:
//	    sets:
//	      general: {}
//
// Provider fails when its section is missing; OptionalProvider treats a
// missing section as empty.
//
//	provider := config.OptionalProvider(&populate.Config{}, "optdef")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
