package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrSectionNotFound is wrapped by parsers when the requested path does not exist.
var ErrSectionNotFound = errors.New("config section not found")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "optdef" navigates to config["optdef"]
//   - "components:posts" navigates two levels deep
//   - "" (empty path) means parse the entire document
//
// Implementations wrap ErrSectionNotFound when the path does not exist.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return provide(target, path, false)
}

// OptionalProvider is like Provider but treats a missing section as empty:
// the target keeps its zero value, defaults are applied, and it is validated.
func OptionalProvider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return provide(target, path, true)
}

func provide[T any](target *T, path string, optional bool) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)

		switch {
		case err == nil:
		case optional && errors.Is(err, ErrSectionNotFound):
			slog.Debug("optional config section missing", slog.String("path", path))
		default:
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		return finalize(target, path)
	}
}

func finalize[T any](target *T, path string) (*T, error) {
	targetDefaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := any(target).(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}
	}

	return target, nil
}
