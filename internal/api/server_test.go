package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/scheduler"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/authenticating"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error { return f(ctx) }

func TestHandler_TriggerRequiresToken(t *testing.T) {
	log.SetupTestLogger()

	runs := make(chan string, 1)
	sync := scheduler.NewDownloadSyncService(runnerFunc(func(ctx context.Context) error {
		runs <- log.GetRunID(ctx)
		return nil
	}), config.DownloadSync{CronSchedule: "0 4 * * *"})

	authenticator := authenticating.NewService(config.Auth{Secret: "segredo"})
	token, err := authenticator.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(authenticator, sync))
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/download/run", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/download/run", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	select {
	case runID := <-runs:
		assert.NotEmpty(t, runID)
	case <-time.After(5 * time.Second):
		t.Fatal("download não foi executado")
	}
	sync.Wait()

	resp, err = http.Get(server.URL + "/healthcheck")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "0"}}
	sync := scheduler.NewDownloadSyncService(runnerFunc(func(context.Context) error { return nil }), config.DownloadSync{})
	server := New(cfg, authenticating.NewService(config.Auth{}), sync)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou")
	}
}
