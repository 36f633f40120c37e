package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

// DownloadRunner executa um download completo
type DownloadRunner interface {
	Run(ctx context.Context) error
}

// DownloadSyncStatus é o retrato do agendador exposto pela API
type DownloadSyncStatus struct {
	SyncEnabled         bool      `json:"sync_enabled"`
	SyncCron            string    `json:"sync_cron"`
	Running             bool      `json:"running"`
	LastRunID           string    `json:"last_run_id,omitempty"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
	LastSyncError       string    `json:"last_sync_error,omitempty"`
}

// DownloadSyncService agenda e executa o download dos relatórios do Google Ads
type DownloadSyncService struct {
	scheduler *gocron.Scheduler
	config    config.DownloadSync
	runner    DownloadRunner
	now       func() time.Time

	// contexto base das execuções; cancelado junto com o agendador
	baseCtx context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	finished            chan struct{}
}

func NewDownloadSyncService(runner DownloadRunner, syncConfig config.DownloadSync) *DownloadSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.Enabled,
	}).Info("Configuração do agendador de download carregada")

	return &DownloadSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		runner:    runner,
		now:       time.Now,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador. Execuções manuais funcionam mesmo com o agendamento desabilitado.
func (s *DownloadSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Download agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de download")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if s.tryStart() {
			s.runSync()
		} else {
			logrus.Info("Download já em andamento, ignorando execução agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar download: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de download")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia um download em segundo plano. Retorna false quando
// já existe um em andamento.
func (s *DownloadSyncService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Download já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando download manual")
	go s.runSync()
	return true
}

// Wait bloqueia até a execução em andamento terminar
func (s *DownloadSyncService) Wait() {
	s.syncMutex.Lock()
	finished := s.finished
	s.syncMutex.Unlock()

	if finished != nil {
		<-finished
	}
}

func (s *DownloadSyncService) GetStatus() DownloadSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return DownloadSyncStatus{
		SyncEnabled:         s.config.Enabled,
		SyncCron:            s.config.CronSchedule,
		Running:             s.syncRunning,
		LastRunID:           s.lastRunID,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastSyncError:       s.lastSyncError,
	}
}

// tryStart reserva a execução; só um download roda por vez
func (s *DownloadSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.finished = make(chan struct{})
	return true
}

func (s *DownloadSyncService) runSync() {
	s.syncMutex.Lock()
	ctx, runID := log.WithRunID(s.baseCtx)
	s.lastRunID = runID
	finished := s.finished
	s.syncMutex.Unlock()

	err := s.runner.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()
	close(finished)

	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro durante o download dos relatórios")
		return
	}
	log.ForContext(ctx).Info("Download agendado concluído")
}
