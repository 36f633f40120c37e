package main

import (
	"github.com/spf13/cobra"
)

func newDownloadCmd() *cobra.Command {
	flags := &downloadFlags{}

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Baixa os relatórios diários e a estrutura das contas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.overrides(cmd.Flags()))
			if err != nil {
				return err
			}
			if err := cfg.RequireAccounts(); err != nil {
				return err
			}

			ctx := cmd.Context()

			recorder, closeRecorder, err := newRecorder(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer closeRecorder()

			return newRunner(ctx, cfg, recorder).Run(ctx)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
