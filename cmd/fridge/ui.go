package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/italianiroberto75-cyber/FRIGO/internal/config"
	"github.com/italianiroberto75-cyber/FRIGO/internal/tui"
	"github.com/italianiroberto75-cyber/FRIGO/internal/tui/themes"
)

func uiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive fridge screen",
		Long: `Open a full-screen view of the fridge. Press a to add, e to edit, d to
delete, tab to change the filter and ? for all keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gateway, err := createGateway()
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), gateway)
			if err != nil {
				return err
			}
			defer a.close()

			return tui.Run(cmd.Context(), a.engine,
				tui.WithTheme(themes.GetTheme(viper.GetString(config.KeyUITheme))))
		},
	}

	cmd.Flags().String("theme", "default", "Color theme (default, mono)")
	_ = viper.BindPFlag(config.KeyUITheme, cmd.Flags().Lookup("theme"))

	return cmd
}
