package adsclient

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const userAgent = "google-ads-downloader"

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	// DownloadReport baixa um relatório da conta customerID e devolve o texto TSV
	DownloadReport(ctx context.Context, customerID string, definition *googleadsdomain.ReportDefinition) (string, error)
	// GetManagedCustomers lista todas as contas abaixo da conta gerente
	GetManagedCustomers(ctx context.Context) ([]googleadsdomain.ManagedCustomer, error)
	// APIVersion é a versão da API usada nas requisições
	APIVersion() string
}

// AdsClient fala com a API do Google Ads usando um conjunto de credenciais.
// O http.Client recebido deve adicionar o token OAuth2 (ver NewHTTPClient).
type AdsClient struct {
	cfg         config.GoogleAds
	credentials config.AccountCredentials
	httpClient  *http.Client
	limiter     *rate.Limiter
}

func NewClient(cfg config.GoogleAds, credentials config.AccountCredentials, httpClient *http.Client) Client {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &AdsClient{
		cfg:         cfg,
		credentials: credentials,
		httpClient:  httpClient,
		limiter:     limiter,
	}
}

func (c *AdsClient) APIVersion() string {
	return c.cfg.APIVersion
}

// do envia a requisição respeitando o limite de requisições por segundo
func (c *AdsClient) do(req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse lê o corpo e classifica o status: 5xx é transitório, os
// demais erros são fatais.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := describeError(resp.StatusCode, body)

	logrus.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"error":  apiErr.Error(),
	}).Debug("Erro na resposta da API do Google Ads")

	if resp.StatusCode >= 500 {
		return nil, &domain.RetryableError{Code: resp.StatusCode, Err: apiErr}
	}
	return nil, &domain.FatalError{Err: apiErr}
}

func describeError(status int, body []byte) error {
	var reportErr googleadsdomain.ReportDownloadError
	if err := xml.Unmarshal(body, &reportErr); err == nil && reportErr.APIError.Type != "" {
		return fmt.Errorf("HTTP %d: %w", status, &reportErr)
	}

	var soapResp googleadsdomain.ManagedCustomerResponse
	if err := xml.Unmarshal(body, &soapResp); err == nil && soapResp.Body.Fault != nil {
		return fmt.Errorf("HTTP %d: %w", status, soapResp.Body.Fault)
	}

	text := strings.TrimSpace(string(body))
	if len(text) > 500 {
		text = text[:500]
	}
	return fmt.Errorf("HTTP %d: %s", status, text)
}

// ClassifyTransportError separa quedas de conexão (transitórias) dos demais erros.
// Falhas ao renovar o token OAuth2 seguem o status devolvido pelo servidor de tokens.
func ClassifyTransportError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return &domain.RetryableError{Err: err}
		}
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.Response != nil && retrieveErr.Response.StatusCode >= 500 {
			return &domain.RetryableError{Code: retrieveErr.Response.StatusCode, Err: err}
		}
		return &domain.FatalError{Err: err}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) {
		return &domain.RetryableError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.RetryableError{Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		var opErr *net.OpError
		if errors.As(urlErr.Err, &opErr) {
			return &domain.RetryableError{Err: err}
		}
		// o transporte nem sempre encadeia o io.EOF original
		if strings.HasSuffix(urlErr.Err.Error(), "EOF") {
			return &domain.RetryableError{Err: err}
		}
	}

	return &domain.FatalError{Err: err}
}
