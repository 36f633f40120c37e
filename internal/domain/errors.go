package domain

import (
	"errors"
	"fmt"
)

// Erros de configuração
var (
	ErrInvalidFirstDate   = errors.New("invalid first date")
	ErrNoCredentials      = errors.New("no google ads credentials configured")
	ErrInvalidCredentials = errors.New("invalid google ads credentials")
)

// RetryableError indica uma falha transitória da API (5xx ou desconexão de rede).
// Code é o status HTTP, ou 0 quando a conexão caiu antes de uma resposta.
type RetryableError struct {
	Code int
	Err  error
}

func (e *RetryableError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d: %v", e.Code, e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// FatalError indica uma falha que não deve ser repetida (autenticação, requisição inválida)
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal error: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExhaustedRetriesError é devolvido quando todas as tentativas falharam com erro transitório
type ExhaustedRetriesError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Err
}

// IsRetryable informa se err (ou algum erro encadeado) é transitório
func IsRetryable(err error) bool {
	var retryable *RetryableError
	return errors.As(err, &retryable)
}
