// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON by default, or logfmt-style text for terminals, and is the
// developer-warning channel for rejected components and invalid queries.
package logging
