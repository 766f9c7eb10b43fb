package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/italianiroberto75-cyber/FRIGO/internal/cli"
	"github.com/italianiroberto75-cyber/FRIGO/internal/facet"
)

func listCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the fridge contents",
		Long: `Show every item grouped by category and colored by how soon it expires.
Use --filter with one of the labels printed by "fridge filters".`,
		Example: `  fridge list
  fridge list --filter Frozen
  fridge list --filter Dairy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			view := a.engine.View(matchFacet(facet.AvailableFilters(a.store.Items()), filter))
			if filter != "" && !strings.EqualFold(view.Active, filter) {
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("No %q filter here, showing all items", filter)))
			}
			return cli.RenderView(out, view)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", facet.All, "Show only one facet (All, Frozen or a category)")

	return cmd
}

// matchFacet returns the available facet equal to filter ignoring case, or
// filter itself when none matches.
func matchFacet(available []string, filter string) string {
	for _, f := range available {
		if strings.EqualFold(f, filter) {
			return f
		}
	}
	return filter
}

func filtersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the filters that apply to the current contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.close()

			for _, f := range facet.AvailableFilters(a.store.Items()) {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the food categories and their icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RenderCategories(cmd.OutOrStdout())
		},
	}
}
