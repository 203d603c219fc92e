package cmd

import (
	"fmt"

	"github.com/bnema/openloop-cli/internal/application"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newTokensCmd(app *app, root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage session tokens",
	}

	cmd.AddCommand(newTokensRefreshCmd(app, root))

	return cmd
}

func newTokensRefreshCmd(app *app, root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Log every account in again and replace the token file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.store("")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progress := newProgress(out, root.quiet)
			refresher := app.tokenRefresher(store)
			if progress.Interactive() {
				refresher = application.NewTokenRefresher(
					store,
					store,
					app.remote,
					app.retryExecutor("refresh"),
					app.settings.MaxWorkers,
					app.logger.Level(zerolog.WarnLevel),
				)
			}

			if err := progress.Run(cmd.Context(), "Refreshing tokens...", refresher.RefreshAllTokens); err != nil {
				return err
			}

			tokens, err := store.LoadTokens(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "tokens refreshed: %d\n", len(tokens))
			return err
		},
	}
}
