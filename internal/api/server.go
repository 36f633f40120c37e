package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/google-ads-downloader/internal/api/handler"
	"github.com/vfg2006/google-ads-downloader/internal/api/handler/router"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/authenticating"
	"github.com/vfg2006/google-ads-downloader/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta as rotas e a cadeia de middlewares
func NewHandler(authenticator authenticating.Authenticator, downloadSync handler.DownloadSync) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Download(downloadSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	downloadSync handler.DownloadSync,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(authenticator, downloadSync),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run atende requisições até o contexto ser cancelado e então desliga o servidor
func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
