package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/italianiroberto75-cyber/FRIGO/internal/cli"
	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/expiry"
)

func addCmd() *cobra.Command {
	var (
		frozen bool
		file   string
	)

	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Add a food item",
		Long: `Add a food item to the fridge. The classifier suggests its shelf life,
category and icon; when it is unavailable a default shelf life is used.

Use --file to add one item per line from a file, or "-" for stdin. A line
ending in "!frozen" is stored in the freezer.`,
		Example: `  fridge add milk
  fridge add --frozen peas
  fridge add --file groceries.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return fmt.Errorf("give a food name or --file")
			}
			if file != "" && len(args) > 0 {
				return fmt.Errorf("give either a food name or --file, not both")
			}

			gateway, err := createGateway()
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), gateway)
			if err != nil {
				return err
			}
			defer a.close()

			if file != "" {
				return runBatchAdd(cmd, a.engine, file, frozen)
			}
			return runAdd(cmd, a.engine, strings.Join(args, " "), frozen)
		},
	}

	cmd.Flags().BoolVar(&frozen, "frozen", false, "Store in the freezer")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read item names from a file (- for stdin)")

	return cmd
}

func runAdd(cmd *cobra.Command, eng *engine.Engine, name string, frozen bool) error {
	result, err := eng.Add(cmd.Context(), name, frozen)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entry := result.Entry
	days := expiry.DaysBetween(eng.Now(), entry.ExpiryDate)
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %s %s (%s), keeps %d days [%s]",
		cli.Glyph(entry.Icon), entry.Name, entry.Category, days, cli.ShortID(entry.ID))))

	if result.UsedFallback {
		fmt.Fprintln(out, cli.FormatWarning("Could not reach the classifier, using the default shelf life"))
	}
	warnSaveError(out, eng)
	return nil
}

func runBatchAdd(cmd *cobra.Command, eng *engine.Engine, file string, frozen bool) error {
	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	out := cmd.OutOrStdout()
	handler := cli.NewInterruptHandler(out)
	ctx := handler.HandleInterrupts(cmd.Context(), true)

	items, err := cli.ReadItems(ctx, r, frozen)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("Nothing to add"))
		return nil
	}

	prompter := cli.NewCLIPrompter(cmd.InOrStdin(), out)
	summary, err := eng.AddBatch(ctx, items, prompter.Progress)
	if summary != nil {
		prompter.ShowBatchSummary(summary)
	}
	warnSaveError(out, eng)

	if handler.WasInterrupted() {
		return nil
	}
	return err
}

func warnSaveError(w io.Writer, eng *engine.Engine) {
	if err := eng.LastSaveError(); err != nil {
		fmt.Fprintln(w, cli.FormatWarning("Changes could not be saved: "+err.Error()))
	}
}
