package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/0xalexb/optdef/config"
)

// StdinPath makes NewFetcher read from standard input instead of a file.
const StdinPath = "-"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data once at construction time and caches the contents.
type Fetcher struct {
	source string
	data   []byte
}

var _ config.DataFetcher = (*Fetcher)(nil)

// NewFetcher returns an Fx-friendly constructor for a Fetcher reading fpath.
// The file is read when the constructor runs. A path of "-" reads standard input.
// The constructor fails if the file cannot be read or the path is a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	if fpath == StdinPath {
		return NewReaderFetcher("stdin", os.Stdin)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			source: cleanPath,
			data:   data,
		}, nil
	}
}

// NewReaderFetcher returns a constructor for a Fetcher that drains reader once.
// The name identifies the source in errors and logs.
func NewReaderFetcher(name string, reader io.Reader) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		return &Fetcher{
			source: name,
			data:   data,
		}, nil
	}
}

// Source returns the cleaned file path or the reader name.
func (f *Fetcher) Source() string {
	return f.source
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
