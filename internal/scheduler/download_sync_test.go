package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

type blockingRunner struct {
	release chan struct{}
	calls   atomic.Int32
	runIDs  chan string
	err     error
}

func newBlockingRunner(err error) *blockingRunner {
	return &blockingRunner{
		release: make(chan struct{}),
		runIDs:  make(chan string, 10),
		err:     err,
	}
}

func (r *blockingRunner) Run(ctx context.Context) error {
	r.calls.Add(1)
	r.runIDs <- log.GetRunID(ctx)
	<-r.release
	return r.err
}

func TestDownloadSyncService_TriggerManualSync(t *testing.T) {
	tests := []struct {
		name      string
		runErr    error
		wantError string
	}{
		{
			name: "Download concluído com sucesso",
		},
		{
			name:      "Download com erro registra a mensagem no status",
			runErr:    errors.New("HTTP 500: internal"),
			wantError: "HTTP 500: internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newBlockingRunner(tt.runErr)
			service := NewDownloadSyncService(runner, config.DownloadSync{CronSchedule: "0 4 * * *"})

			require.True(t, service.TriggerManualSync())
			runID := <-runner.runIDs
			assert.NotEmpty(t, runID)

			// Uma segunda solicitação durante a execução é ignorada
			assert.False(t, service.TriggerManualSync())
			assert.True(t, service.GetStatus().Running)

			close(runner.release)
			service.Wait()

			status := service.GetStatus()
			assert.False(t, status.Running)
			assert.Equal(t, runID, status.LastRunID)
			assert.Equal(t, tt.wantError, status.LastSyncError)
			assert.False(t, status.LastSyncCompletedAt.Before(status.LastSyncStartedAt))
			assert.EqualValues(t, 1, runner.calls.Load())
		})
	}
}

func TestDownloadSyncService_NewRunAfterCompletion(t *testing.T) {
	runner := newBlockingRunner(nil)
	close(runner.release)
	service := NewDownloadSyncService(runner, config.DownloadSync{})

	require.True(t, service.TriggerManualSync())
	service.Wait()
	require.True(t, service.TriggerManualSync())
	service.Wait()

	assert.EqualValues(t, 2, runner.calls.Load())
	assert.NotEqual(t, <-runner.runIDs, <-runner.runIDs)
}

func TestDownloadSyncService_Start(t *testing.T) {
	tests := []struct {
		name    string
		config  config.DownloadSync
		wantErr bool
	}{
		{
			name:   "Agendamento desabilitado",
			config: config.DownloadSync{Enabled: false, CronSchedule: "inválido"},
		},
		{
			name:   "Agendamento válido",
			config: config.DownloadSync{Enabled: true, CronSchedule: "0 4 * * *"},
		},
		{
			name:    "Expressão cron inválida",
			config:  config.DownloadSync{Enabled: true, CronSchedule: "a cada hora"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewDownloadSyncService(newBlockingRunner(nil), tt.config)
			err := service.Start(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.config.Enabled, service.GetStatus().SyncEnabled)
		})
	}
}

func TestDownloadSyncService_Wait_WithoutRun(t *testing.T) {
	service := NewDownloadSyncService(newBlockingRunner(nil), config.DownloadSync{})

	service.Wait()

	assert.True(t, service.GetStatus().LastSyncStartedAt.IsZero())
}
