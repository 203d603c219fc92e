package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/openloop-cli/internal/adapters/logging"
	"github.com/bnema/openloop-cli/internal/application"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newSetupCmd(app *app, root *rootFlags) *cobra.Command {
	var inviteCode string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register every account with the invite code and store fresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.store("")
			if err != nil {
				return err
			}

			code := app.settings.InviteCode
			if inviteCode != "" {
				code = inviteCode
			}

			out := cmd.OutOrStdout()
			progress := newProgress(out, root.quiet)
			logger := logging.Component(app.logger, "setup")
			if progress.Interactive() {
				logger = logger.Level(zerolog.WarnLevel)
			}

			registrar := application.NewRegistrar(
				store,
				store,
				app.remote,
				app.retryExecutor("setup"),
				application.RegistrarOptions{
					InviteCode: code,
					Pause:      app.settings.RequestDelay,
				},
				logger,
			)

			var result application.RegistrationResult
			err = progress.Run(cmd.Context(), "Registering accounts...", func(ctx context.Context) error {
				var runErr error
				result, runErr = registrar.RegisterAll(ctx)
				return runErr
			})
			if err != nil {
				return fmt.Errorf("setup accounts: %w", err)
			}

			_, err = fmt.Fprintf(out, "registered: %d, already registered: %d, failed: %d, tokens written: %d\n",
				result.Registered, result.Existing, len(result.Failed), result.Tokens)
			return err
		},
	}

	cmd.Flags().StringVar(&inviteCode, "invite-code", "", "invite code used for registration (defaults to invite_code from the config)")

	return cmd
}
