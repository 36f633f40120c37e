package adsclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
)

// DownloadReport envia a definição do relatório e devolve o relatório completo em
// TSV, com a linha de título, o cabeçalho e a linha de totais.
func (c *AdsClient) DownloadReport(ctx context.Context, customerID string, definition *googleadsdomain.ReportDefinition) (string, error) {
	definition.Namespace = googleadsdomain.CommonNamespace(c.cfg.APIVersion)

	rdxml, err := definition.Encode()
	if err != nil {
		return "", &domain.FatalError{Err: fmt.Errorf("erro ao serializar definição do relatório: %w", err)}
	}

	form := url.Values{}
	form.Set("__rdxml", rdxml)

	endpoint := fmt.Sprintf("%s/api/adwords/reportdownload/%s", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.FatalError{Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("developerToken", c.credentials.DeveloperToken)
	req.Header.Set("clientCustomerId", customerID)
	req.Header.Set("skipReportHeader", "false")
	req.Header.Set("skipColumnHeader", "false")
	req.Header.Set("skipReportSummary", "false")

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"report_type": definition.ReportType,
		"report_name": definition.ReportName,
	}).Debug("Baixando relatório do Google Ads")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
