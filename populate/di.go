package populate

import (
	"context"
	"log/slog"

	"github.com/0xalexb/optdef/config"
	filefetcher "github.com/0xalexb/optdef/config/fetcher/file"
	yamlparser "github.com/0xalexb/optdef/config/parser/yaml"
	"github.com/0xalexb/optdef/registry"

	"go.uber.org/fx"
)

// Value group tags collecting filters and hooks. Order within a group is not
// guaranteed; use Chain inside a single member when order matters.
const (
	FilterGroup = `group:"optdef.description_filters"`
	HookGroup   = `group:"optdef.direct_hooks"`
)

// Config file sections read by FromFile.
const (
	SettingsPath    = "optdef"
	DescriptionPath = "components"
)

// Params are the dependencies of the populator.
type Params struct {
	fx.In

	Registry *registry.Registry
	Config   *Config      `optional:"true"`
	Logger   *slog.Logger `optional:"true"`
	Filters  []Filter     `group:"optdef.description_filters"`
	Hooks    []Hook       `group:"optdef.direct_hooks"`
}

// NewModule creates the Fx module owning the registry and its populator.
// Population runs in the OnStart hook of the application lifecycle.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule() fx.Option {
	return fx.Module("components",
		fx.Provide(newRegistry),
		fx.Provide(newPopulator),
		fx.Invoke(func(lifecycle fx.Lifecycle, populator *Populator) {
			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					populator.Populate()

					return nil
				},
				OnStop: nil,
			})
		}),
	)
}

type registryParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

func newRegistry(params registryParams) *registry.Registry {
	return registry.New(params.Logger)
}

func newPopulator(params Params) *Populator {
	return NewPopulator(params.Registry, params.Config, params.Logger, params.Filters, params.Hooks)
}

// FromFile creates an Fx module reading fpath once. The optdef section, if
// present, supplies *Config; the components section, if present, is merged
// into the working description as a Filter.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func FromFile(fpath string) fx.Option {
	return fx.Module("components.file",
		fx.Provide(
			fx.Private,
			fx.Annotate(
				func() *yamlparser.Parser { return yamlparser.NewParser() },
				fx.As(new(config.Parser)),
			),
			fx.Annotate(
				filefetcher.NewFetcher(fpath),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.OptionalProvider(new(Config), SettingsPath)),
		fx.Provide(
			fx.Annotate(
				func(parser config.Parser, fetcher config.DataFetcher) (Filter, error) {
					desc, err := config.OptionalProvider(new(Description), DescriptionPath)(parser, fetcher)
					if err != nil {
						return nil, err
					}

					return MergeFilter(*desc), nil
				},
				fx.ResultTags(FilterGroup),
			),
		),
	)
}

// AsFilter annotates a constructor returning a Filter for the filter group.
func AsFilter(constructor any) any {
	return fx.Annotate(constructor, fx.ResultTags(FilterGroup))
}

// AsHook annotates a constructor returning a Hook for the hook group.
func AsHook(constructor any) any {
	return fx.Annotate(constructor, fx.ResultTags(HookGroup))
}

// SupplyFilter adds a ready Filter to the filter group.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func SupplyFilter(filter Filter) fx.Option {
	return fx.Provide(AsFilter(func() Filter { return filter }))
}

// SupplyHook adds a ready Hook to the hook group.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func SupplyHook(hook Hook) fx.Option {
	return fx.Provide(AsHook(func() Hook { return hook }))
}
