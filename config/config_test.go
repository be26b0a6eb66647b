package config

import (
	"errors"
	"fmt"
	"testing"
)

type mockParser struct {
	parseFunc func(data []byte, target any, path string) error
}

func (m *mockParser) Parse(data []byte, target any, path string) error {
	return m.parseFunc(data, target, path)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

type groupsConfig struct {
	Groups   []string
	defaults int
	err      error
}

func (c *groupsConfig) SetDefaults() bool {
	if c.Groups != nil {
		return false
	}

	c.defaults++
	c.Groups = []string{"posts"}

	return true
}

func (c *groupsConfig) Validate() error {
	return c.err
}

func staticFetcher() *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("data"), nil
		},
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &groupsConfig{}
	parser := &mockParser{
		parseFunc: func(_ []byte, target any, _ string) error {
			cfg, ok := target.(*groupsConfig)
			if !ok {
				return errors.New("invalid target type")
			}

			cfg.Groups = []string{"pages", "media"}

			return nil
		},
	}

	result, err := Provider(target, "optdef")(parser, staticFetcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if len(result.Groups) != 2 || result.defaults != 0 {
		t.Errorf("expected parsed groups without defaults, got %v (defaults %d)", result.Groups, result.defaults)
	}
}

func TestProvider_AppliesDefaults(t *testing.T) {
	t.Parallel()

	target := &groupsConfig{}
	parser := &mockParser{
		parseFunc: func(_ []byte, _ any, _ string) error {
			return nil
		},
	}

	result, err := Provider(target, "optdef")(parser, staticFetcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.defaults != 1 || result.Groups[0] != "posts" {
		t.Errorf("expected defaults to be applied once, got %v (defaults %d)", result.Groups, result.defaults)
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")
	missingErr := fmt.Errorf("path not found: %w", ErrSectionNotFound)

	tests := []struct {
		name      string
		fetchFunc func() ([]byte, error)
		parseFunc func(data []byte, target any, path string) error
		targetErr error
		wantErr   error
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			targetErr: nil,
			wantErr:   fetchErr,
		},
		{
			name:      "parse error",
			fetchFunc: staticFetcher().fetchFunc,
			parseFunc: func(_ []byte, _ any, _ string) error {
				return parseErr
			},
			targetErr: nil,
			wantErr:   parseErr,
		},
		{
			name:      "missing section is an error",
			fetchFunc: staticFetcher().fetchFunc,
			parseFunc: func(_ []byte, _ any, _ string) error {
				return missingErr
			},
			targetErr: nil,
			wantErr:   ErrSectionNotFound,
		},
		{
			name:      "validation error",
			fetchFunc: staticFetcher().fetchFunc,
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &groupsConfig{err: testInfo.targetErr}
			parser := &mockParser{parseFunc: testInfo.parseFunc}
			fetcher := &mockDataFetcher{fetchFunc: testInfo.fetchFunc}

			result, err := Provider(target, "optdef")(parser, fetcher)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}

func TestOptionalProvider_MissingSection(t *testing.T) {
	t.Parallel()

	target := &groupsConfig{}
	parser := &mockParser{
		parseFunc: func(_ []byte, _ any, path string) error {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, path)
		},
	}

	result, err := OptionalProvider(target, "optdef")(parser, staticFetcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target || result.defaults != 1 {
		t.Errorf("expected defaulted target, got %+v", result)
	}
}

func TestOptionalProvider_StillValidates(t *testing.T) {
	t.Parallel()

	validationErr := errors.New("validation failed")
	target := &groupsConfig{err: validationErr}
	parser := &mockParser{
		parseFunc: func(_ []byte, _ any, _ string) error {
			return ErrSectionNotFound
		},
	}

	_, err := OptionalProvider(target, "optdef")(parser, staticFetcher())
	if !errors.Is(err, validationErr) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestOptionalProvider_OtherParseErrors(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("parse failed")
	parser := &mockParser{
		parseFunc: func(_ []byte, _ any, _ string) error {
			return parseErr
		},
	}

	_, err := OptionalProvider(&groupsConfig{}, "optdef")(parser, staticFetcher())
	if !errors.Is(err, parseErr) {
		t.Errorf("expected parse error, got %v", err)
	}
}
