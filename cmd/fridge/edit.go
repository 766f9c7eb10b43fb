package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/italianiroberto75-cyber/FRIGO/internal/cli"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

func editCmd() *cobra.Command {
	var (
		name     string
		category string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename or recategorize an item",
		Long: `Change the name or category of an item. The id may be shortened to any
unambiguous prefix. The icon follows the new category; the expiry date and
freezer flag never change.`,
		Example: `  fridge edit 3f2a --name "Oat milk"
  fridge edit 3f2a --category Dairy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nameSet := cmd.Flags().Changed("name")
			categorySet := cmd.Flags().Changed("category")
			if !nameSet && !categorySet {
				return fmt.Errorf("nothing to change: pass --name or --category")
			}

			a, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.close()

			current, err := a.engine.Resolve(args[0])
			if err != nil {
				return err
			}

			newName := current.Name
			if nameSet {
				newName = name
			}
			newCategory := current.Category
			if categorySet {
				newCategory = model.Category(category)
			}

			updated, err := a.engine.Edit(cmd.Context(), current.ID, newName, newCategory)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Updated %s %s (%s)",
				cli.Glyph(updated.Icon), updated.Name, updated.Category)))
			warnSaveError(out, a.engine)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&category, "category", "", "New category (see fridge categories)")

	return cmd
}

func removeCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item",
		Long:    `Remove an item from the fridge. The id may be shortened to any unambiguous prefix.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.close()

			entry, err := a.engine.Resolve(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if interactive {
				prompter := cli.NewCLIPrompter(cmd.InOrStdin(), out)
				ok, err := prompter.Confirm(cmd.Context(), fmt.Sprintf("Remove %s?", entry.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, cli.FormatInfo("Kept "+entry.Name))
					return nil
				}
			}

			if _, err := a.engine.Remove(cmd.Context(), entry.ID); err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess("Removed "+entry.Name))
			warnSaveError(out, a.engine)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask before removing")

	return cmd
}
