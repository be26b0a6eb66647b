package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/optdef/config"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
// It is always joined with config.ErrSectionNotFound.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct {
	options []yaml.DecodeOption
}

var _ config.Parser = (*Parser)(nil)

// NewParser creates a new YAML parser instance.
// The decode options are applied to every Parse call, e.g. yaml.Strict().
func NewParser(options ...yaml.DecodeOption) *Parser {
	return &Parser{options: options}
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.options...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %w: %s", ErrPathNotFound, config.ErrSectionNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	if node == nil {
		return fmt.Errorf("%w: %w: %s", ErrPathNotFound, config.ErrSectionNotFound, path)
	}

	err = yaml.NodeToValue(node, target, p.options...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "optdef" -> "$.optdef"
//   - "components:posts" -> "$.components.posts"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
