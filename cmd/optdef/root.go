package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/optdef"
	"github.com/0xalexb/optdef/component"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const appName = "optdef"

var errUnknownOutput = errors.New("unknown output format")

type globalFlags struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Build and query a group/set/member/section/field component hierarchy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", `YAML file with optdef and components sections ("-" for stdin)`)
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(
		newQueryCmd(flags),
		newCheckCmd(flags),
		newTreeCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

// startApp builds and starts the application; the caller must call stop.
func startApp(cmd *cobra.Command, flags *globalFlags) (*optdef.App, func(), error) {
	opts := []optdef.Option{
		optdef.WithLogLevel(flags.logLevel),
		optdef.WithLogFormat(flags.logFormat),
		optdef.WithLogOutput(cmd.ErrOrStderr()),
	}

	if flags.configFile != "" {
		opts = append(opts, optdef.WithConfigFile(flags.configFile))
	}

	app := optdef.NewApp(opts...)

	err := app.Start()
	if err != nil {
		return nil, nil, err
	}

	return app, func() { _ = app.Stop() }, nil
}

func writeOutput(w io.Writer, format string, value any) error {
	var options []yaml.EncodeOption

	switch format {
	case "yaml":
	case "json":
		options = append(options, yaml.JSON())
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, format)
	}

	out, err := yaml.MarshalWithOptions(value, options...)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	_, err = w.Write(out)

	return err
}

func parseTypeFlag(value string) (component.Type, error) {
	if value == "" {
		return component.Unspecified, nil
	}

	return component.ParseType(value)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (compiled %s)\n", appName, optdef.Version, optdef.CompiledAt)

			return err
		},
	}
}
