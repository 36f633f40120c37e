package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads/adsclient"
)

func newRefreshTokenCmd() *cobra.Command {
	var accounts []string

	cmd := &cobra.Command{
		Use:   "refresh-oauth2-token",
		Short: "Gera um novo refresh token OAuth2 para cada conjunto de credenciais",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("accounts") {
				flags := &downloadFlags{accounts: accounts}
				overrides = flags.overrides(cmd.Flags())
			}

			cfg, err := loadConfig(overrides)
			if err != nil {
				return err
			}
			if err := cfg.RequireAccounts(); err != nil {
				return err
			}

			broker := adsclient.NewTokenBroker(cfg.GoogleAds, cmd.InOrStdin(), cmd.OutOrStdout())
			for _, credentials := range cfg.Accounts {
				name := credentials.Name
				if name == "" {
					name = credentials.ClientCustomerID
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n== %s ==\n", name)

				if _, err := broker.Refresh(cmd.Context(), credentials); err != nil {
					return fmt.Errorf("conjunto de credenciais %q: %w", name, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&accounts, "accounts", nil, "conjunto de credenciais; pode ser repetido")
	return cmd
}
