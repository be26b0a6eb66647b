package optdef

import (
	"io"

	"github.com/0xalexb/optdef/populate"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	LogFormat  string
	LogOutput  io.Writer
	ConfigFile string
	Filters    []populate.Filter
	Hooks      []populate.Hook
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs, which go to stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithConfigFile reads populator settings and the component description from
// a YAML file. Use "-" for standard input.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
	}
}

// WithDescriptionFilter adds a filter over the declarative description.
// Filters added with this option run in the order they were given.
func WithDescriptionFilter(filters ...populate.Filter) Option {
	return func(opts *Options) {
		opts.Filters = append(opts.Filters, filters...)
	}
}

// WithDirectHook adds a hook that registers components directly after the
// declarative description has been registered.
func WithDirectHook(hooks ...populate.Hook) Option {
	return func(opts *Options) {
		opts.Hooks = append(opts.Hooks, hooks...)
	}
}
