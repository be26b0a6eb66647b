package main

import (
	"fmt"

	"github.com/0xalexb/optdef/registry"

	"github.com/spf13/cobra"
)

type queryFlags struct {
	inline      string
	typ         string
	slugs       []string
	parentType  string
	parentSlugs []string
	single      bool
	output      string
}

func newQueryCmd(global *globalFlags) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query components by slug and ancestry",
		Example: `  optdef query -c optdef.yaml --parent-type group --parent-slug posts
  optdef query -c optdef.yaml --query '{type: section, parent_slug: editor}' --single`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := flags.build(cmd)
			if err != nil {
				return err
			}

			app, stop, err := startApp(cmd, global)
			if err != nil {
				return err
			}
			defer stop()

			if flags.single {
				found, ok, err := app.Registry().QuerySingle(query)
				if err != nil {
					return err
				}

				if !ok {
					return writeOutput(cmd.OutOrStdout(), flags.output, false)
				}

				return writeOutput(cmd.OutOrStdout(), flags.output, found)
			}

			results, err := app.Registry().Query(query)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), flags.output, results)
		},
	}

	cmd.Flags().StringVar(&flags.inline, "query", "", "query object in YAML or JSON (type, slug, parent_type, parent_slug)")
	cmd.Flags().StringVar(&flags.typ, "type", "", "target type (default field)")
	cmd.Flags().StringSliceVar(&flags.slugs, "slug", nil, "target slugs")
	cmd.Flags().StringVar(&flags.parentType, "parent-type", "", "ancestor type (default: the type above --type)")
	cmd.Flags().StringSliceVar(&flags.parentSlugs, "parent-slug", nil, "ancestor slugs")
	cmd.Flags().BoolVar(&flags.single, "single", false, "return only the first match, or false")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}

// build decodes --query first; explicit flags override its keys.
func (f *queryFlags) build(cmd *cobra.Command) (registry.Query, error) {
	query, err := registry.ParseQuery([]byte(f.inline))
	if err != nil {
		return registry.Query{}, err
	}

	if cmd.Flags().Changed("type") {
		query.Type, err = parseTypeFlag(f.typ)
		if err != nil {
			return registry.Query{}, fmt.Errorf("--type: %w", err)
		}
	}

	if cmd.Flags().Changed("parent-type") {
		query.ParentType, err = parseTypeFlag(f.parentType)
		if err != nil {
			return registry.Query{}, fmt.Errorf("--parent-type: %w", err)
		}
	}

	if cmd.Flags().Changed("slug") {
		query.Slugs = registry.Slugs(f.slugs)
	}

	if cmd.Flags().Changed("parent-slug") {
		query.ParentSlugs = registry.Slugs(f.parentSlugs)
	}

	return query, nil
}
