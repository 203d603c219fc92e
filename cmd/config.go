package cmd

import (
	"fmt"

	"github.com/bnema/openloop-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoded, err := config.Show(app.settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if app.settings.Source != "" {
				if _, err := fmt.Fprintf(out, "# loaded from %s\n", app.settings.Source); err != nil {
					return err
				}
			}
			_, err = out.Write(encoded)
			return err
		},
	})

	return cmd
}
