// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once, when the constructor returned by NewFetcher runs, and
// cached; every Fetch returns a copy of the same bytes. Components are
// populated once per process, so the description they come from must not
// change underneath a running registry.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("optdef.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// The path "-" reads standard input. Use errors.Is(err, file.ErrPathIsDirectory)
// to check for directory errors.
package file
