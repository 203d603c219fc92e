package cmd

import (
	"errors"
	"fmt"

	summaryrender "github.com/bnema/openloop-cli/internal/adapters/render/summary"
	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var proxies string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured accounts with their token and proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if proxies == "" {
				proxies = app.settings.Files.Proxies
			}

			store, err := app.store(proxies)
			if err != nil {
				return err
			}

			credentials, err := store.LoadCredentials(cmd.Context())
			if err != nil && !errors.Is(err, domain.ErrNoCredentials) {
				return err
			}

			tokens, err := store.LoadTokens(cmd.Context())
			if err != nil && !errors.Is(err, domain.ErrConfiguration) && !errors.Is(err, domain.ErrNoTokens) {
				return err
			}

			bindings, err := store.LoadEgress(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]summaryrender.AccountRow, 0, len(credentials))
			for i, credential := range credentials {
				row := summaryrender.AccountRow{
					Index:    i,
					Identity: domain.MaskIdentity(credential.Identity),
				}
				if i < len(tokens) {
					row.Token = domain.MaskToken(tokens[i])
				}
				if i < len(bindings) {
					row.Proxy = bindings[i].Redacted()
				}
				rows = append(rows, row)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summaryrender.RenderAccounts(rows))
			return err
		},
	}

	cmd.Flags().StringVar(&proxies, "proxies", "", "proxy list file (defaults to files.proxies from the config)")

	return cmd
}
