package optdef

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/optdef/logging"
	"github.com/0xalexb/optdef/populate"
	"github.com/0xalexb/optdef/registry"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application owning a component registry that is populated on start.
type App struct {
	app       *fx.App
	registry  *registry.Registry
	populator *populate.Populator
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{
		app:       nil,
		registry:  nil,
		populator: nil,
	}
	app.app = configure(&options, app)

	return app
}

func configure(options *Options, target *App) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	logger := createLogger(options.LogLevel, options.LogFormat, output)
	slog.SetDefault(logger)

	moduleOpts := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}),
		fx.Supply(logger),
		populate.NewModule(),
	}

	if options.ConfigFile != "" {
		moduleOpts = append(moduleOpts, populate.FromFile(options.ConfigFile))
	}

	if len(options.Filters) > 0 {
		moduleOpts = append(moduleOpts, populate.SupplyFilter(populate.Chain(options.Filters...)))
	}

	for _, hook := range options.Hooks {
		moduleOpts = append(moduleOpts, populate.SupplyHook(hook))
	}

	moduleOpts = append(moduleOpts,
		fx.Options(options.Modules...),
		fx.Populate(&target.registry, &target.populator),
	)

	return fx.New(moduleOpts...)
}

func createLogger(level, format string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level, Format: format}

	return logging.NewLogger(config, w)
}

// Err returns the error, if any, that occurred while building the application graph.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Registry returns the component registry. It is populated once Start returns.
func (app *App) Registry() *registry.Registry {
	if app == nil {
		return nil
	}

	return app.registry
}

// Initialized reports whether the registry has been populated.
func (app *App) Initialized() bool {
	return app != nil && app.populator != nil && app.populator.Initialized()
}

// Start starts the Fx application, which populates the registry.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
