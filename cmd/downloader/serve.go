package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/google-ads-downloader/internal/api"
	"github.com/vfg2006/google-ads-downloader/internal/scheduler"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/authenticating"
)

func newServeCmd() *cobra.Command {
	flags := &downloadFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Executa o download periodicamente e expõe a API de status",
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

			downloadSync := scheduler.NewDownloadSyncService(newRunner(ctx, cfg, recorder), cfg.DownloadSync)
			if err := downloadSync.Start(ctx); err != nil {
				return err
			}
			logrus.Info("Agendador de download iniciado com sucesso")

			if cfg.Auth.Secret == "" {
				logrus.Warn("AUTH_SECRET não configurado: rotas /v1 ficam indisponíveis")
			}

			server := api.New(cfg, authenticating.NewService(cfg.Auth), downloadSync)
			err = server.Run(ctx)

			// Um download em andamento termina antes de fechar o registro
			downloadSync.Wait()
			return err
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
