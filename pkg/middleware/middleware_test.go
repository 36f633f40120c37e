package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/authenticating"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

func operatorHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := OperatorFromContext(r.Context())
		if ok {
			w.Write([]byte(claims.Operator))
			return
		}
		w.Write([]byte("anônimo"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	authenticator := authenticating.NewService(config.Auth{Secret: "segredo"})
	token, err := authenticator.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	handler := AuthMiddleware(authenticator)(operatorHandler())

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "Healthcheck é público", path: "/healthcheck", wantStatus: http.StatusOK, wantBody: "anônimo"},
		{name: "Sem cabeçalho", path: "/v1/download/status", wantStatus: http.StatusUnauthorized},
		{name: "Sem prefixo Bearer", path: "/v1/download/status", header: token, wantStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/download/status", header: "Bearer abc", wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/download/status", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "ops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_WithoutSecret(t *testing.T) {
	handler := AuthMiddleware(authenticating.NewService(config.Auth{}))(operatorHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/download/run", nil)
	req.Header.Set("Authorization", "Bearer qualquer")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	log.SetupTestLogger()

	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "20 ms", formatDuration(20*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
