package downloading

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

// Sleeper pausa a execução entre tentativas
type Sleeper func(ctx context.Context, d time.Duration) error

// Retrier repete operações que falham com erro transitório, com pausa linear
// (tentativa * fator) entre as tentativas.
type Retrier struct {
	maxRetries int
	backoff    time.Duration
	sleep      Sleeper
}

// NewRetrier cria um Retrier que faz no máximo maxRetries tentativas
func NewRetrier(maxRetries int, backoff time.Duration) *Retrier {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Retrier{
		maxRetries: maxRetries,
		backoff:    backoff,
		sleep:      contextSleep,
	}
}

// WithSleeper troca a função de pausa (usado nos testes)
func (r *Retrier) WithSleeper(sleep Sleeper) *Retrier {
	r.sleep = sleep
	return r
}

// MaxRetries retorna o número máximo de tentativas
func (r *Retrier) MaxRetries() int {
	return r.maxRetries
}

// Do executa operation até ela ter sucesso, falhar com erro não transitório
// ou esgotar as tentativas.
func (r *Retrier) Do(ctx context.Context, fields log.Fields, operation func() error) error {
	for attempt := 1; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		if !domain.IsRetryable(err) {
			return err
		}

		if attempt >= r.maxRetries {
			return &domain.ExhaustedRetriesError{Attempts: attempt, Err: err}
		}

		pause := time.Duration(attempt) * r.backoff

		log.ForContext(ctx).
			WithFields(fields).
			WithFields(log.Fields{
				"attempt":     attempt,
				"max_retries": r.maxRetries,
				"http_code":   httpCode(err),
				"backoff":     pause.String(),
			}).
			WithError(err).
			Warn("Falha transitória na API do Google Ads, tentando novamente")

		if err := r.sleep(ctx, pause); err != nil {
			return err
		}
	}
}

// FetchReport busca um relatório aplicando a política de novas tentativas
func (r *Retrier) FetchReport(ctx context.Context, service ReportService, req domain.ReportRequest) ([]domain.ReportRow, error) {
	var rows []domain.ReportRow

	err := r.Do(ctx, requestFields(req), func() error {
		var err error
		rows, err = service.Fetch(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func requestFields(req domain.ReportRequest) log.Fields {
	return log.Fields{
		"customer_id": req.CustomerID,
		"report_type": string(req.ReportType),
		"date":        req.DateString(),
		"fields":      req.Fields,
		"predicates":  req.Predicates,
	}
}

func httpCode(err error) int {
	var retryable *domain.RetryableError
	if errors.As(err, &retryable) {
		return retryable.Code
	}
	return 0
}

func contextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
