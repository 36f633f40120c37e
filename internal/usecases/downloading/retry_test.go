package downloading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/downloading/mocks"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
	"go.uber.org/mock/gomock"
)

// recordingSleeper guarda as pausas pedidas sem esperar
type recordingSleeper struct {
	pauses []time.Duration
}

func (s *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	s.pauses = append(s.pauses, d)
	return nil
}

func TestRetrier_FetchReport(t *testing.T) {
	log.SetupTestLogger()

	serverError := &domain.RetryableError{Code: 500, Err: errors.New("internal error")}
	successRows := []domain.ReportRow{{"Ad ID": "1", "Clicks": "4"}}
	req := domain.ReportRequest{CustomerID: "123", ReportType: domain.AdPerformanceReport}

	tests := []struct {
		name         string
		failures     int
		failWith     error
		wantErr      bool
		wantAttempts int
		wantPauses   []time.Duration
	}{
		{
			name:         "Sucesso na primeira tentativa",
			failures:     0,
			wantAttempts: 1,
			wantPauses:   nil,
		},
		{
			name:         "Falha transitória duas vezes e depois sucesso",
			failures:     2,
			failWith:     serverError,
			wantAttempts: 3,
			wantPauses:   []time.Duration{5 * time.Second, 10 * time.Second},
		},
		{
			name:         "Falha transitória max_retries-1 vezes e depois sucesso",
			failures:     4,
			failWith:     &domain.RetryableError{Code: 0, Err: errors.New("connection reset")},
			wantAttempts: 5,
			wantPauses:   []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second, 20 * time.Second},
		},
		{
			name:         "Falha transitória em todas as tentativas",
			failures:     5,
			failWith:     serverError,
			wantErr:      true,
			wantAttempts: 5,
			wantPauses:   []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second, 20 * time.Second},
		},
		{
			name:         "Erro fatal não é repetido",
			failures:     1,
			failWith:     &domain.FatalError{Err: errors.New("AuthenticationError.OAUTH_TOKEN_INVALID")},
			wantErr:      true,
			wantAttempts: 1,
			wantPauses:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReportService(ctrl)
			sleeper := &recordingSleeper{}
			retrier := NewRetrier(5, 5*time.Second).WithSleeper(sleeper.sleep)

			attempts := 0
			service.EXPECT().
				Fetch(gomock.Any(), req).
				DoAndReturn(func(context.Context, domain.ReportRequest) ([]domain.ReportRow, error) {
					attempts++
					if attempts <= tt.failures {
						return nil, tt.failWith
					}
					return successRows, nil
				}).
				Times(tt.wantAttempts)

			rows, err := retrier.FetchReport(context.Background(), service, req)

			assert.Equal(t, tt.wantAttempts, attempts)
			assert.Equal(t, tt.wantPauses, sleeper.pauses)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, rows)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, successRows, rows)
		})
	}
}

func TestRetrier_ExhaustedRetriesError(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReportService(ctrl)
	retrier := NewRetrier(3, time.Second).WithSleeper((&recordingSleeper{}).sleep)

	cause := &domain.RetryableError{Code: 503, Err: errors.New("unavailable")}
	service.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, cause).Times(3)

	_, err := retrier.FetchReport(context.Background(), service, domain.ReportRequest{CustomerID: "1"})

	var exhausted *domain.ExhaustedRetriesError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.ErrorIs(t, err, cause)
}

func TestRetrier_FatalErrorIsReturnedAsIs(t *testing.T) {
	retrier := NewRetrier(5, time.Second).WithSleeper((&recordingSleeper{}).sleep)
	fatal := &domain.FatalError{Err: errors.New("bad request")}

	err := retrier.Do(context.Background(), nil, func() error { return fatal })

	assert.Same(t, fatal, err)
}

func TestRetrier_StopsWhenSleepFails(t *testing.T) {
	log.SetupTestLogger()
	retrier := NewRetrier(5, time.Second).WithSleeper(func(context.Context, time.Duration) error {
		return context.Canceled
	})

	calls := 0
	err := retrier.Do(context.Background(), nil, func() error {
		calls++
		return &domain.RetryableError{Code: 502, Err: errors.New("bad gateway")}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestContextSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, contextSleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, contextSleep(context.Background(), 0))
}
