package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/optdef/component"
	"github.com/0xalexb/optdef/registry"

	"github.com/spf13/cobra"
)

func newTreeCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [group...]",
		Short: "Print the populated hierarchy, optionally limited to some groups",
		Long: `Print the populated hierarchy, optionally limited to some groups.

Children are matched to their parent by slug, so when two parents of the same
type share a slug, the children of both are printed under each of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, stop, err := startApp(cmd, global)
			if err != nil {
				return err
			}
			defer stop()

			groups, err := app.Registry().Query(registry.Query{Type: component.Group, Slugs: registry.Slugs(args)})
			if err != nil {
				return err
			}

			return printTree(cmd.OutOrStdout(), app.Registry(), groups, 0)
		},
	}
}

func printTree(w io.Writer, reg *registry.Registry, nodes []component.Component, depth int) error {
	for _, node := range nodes {
		_, err := fmt.Fprintf(w, "%s%s (%s)\n", strings.Repeat("  ", depth), node.Slug(), node.Type())
		if err != nil {
			return err
		}

		childType, ok := node.Type().Inferior()
		if !ok {
			continue
		}

		children, err := reg.Query(registry.Query{
			Type:        childType,
			ParentType:  node.Type(),
			ParentSlugs: registry.Slugs{node.Slug()},
		})
		if err != nil {
			return err
		}

		err = printTree(w, reg, children, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}
