package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errRejectedComponents = errors.New("some components were rejected")

func newCheckCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Populate the registry and report rejected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, stop, err := startApp(cmd, global)
			if err != nil {
				return err
			}
			defer stop()

			diagnostics := app.Registry().Diagnostics()
			for _, diagnostic := range diagnostics {
				fmt.Fprintln(cmd.OutOrStdout(), diagnostic)
			}

			if len(diagnostics) > 0 {
				return fmt.Errorf("%w: %d", errRejectedComponents, len(diagnostics))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}
}
