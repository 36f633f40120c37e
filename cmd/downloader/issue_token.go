package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/authenticating"
)

func newIssueTokenCmd() *cobra.Command {
	var (
		operator string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Emite um token para as rotas /v1 do modo serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg.Auth).GenerateToken(operator, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "nome de quem usará o token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")
	return cmd
}
