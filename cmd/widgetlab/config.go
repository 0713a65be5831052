package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetlab/internal/config"
)

func newConfigCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Setup(cmd, flags, modeBatch); err != nil {
				return err
			}
			ctx, logger := app.CommandContext(cmd, "command.config.show")

			data, err := config.Marshal(app.Config)
			if err != nil {
				logger.Error(ctx, "config show failed", "error", err)
				return err
			}

			source := app.ConfigPath
			if !app.ConfigFound {
				source += " (not found, defaults)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultPath())
			return nil
		},
	})

	return cmd
}
