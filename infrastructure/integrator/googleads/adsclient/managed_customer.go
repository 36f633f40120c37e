package adsclient

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
)

// GetManagedCustomers percorre todas as páginas do ManagedCustomerService
func (c *AdsClient) GetManagedCustomers(ctx context.Context) ([]googleadsdomain.ManagedCustomer, error) {
	customers := make([]googleadsdomain.ManagedCustomer, 0)

	for startIndex := 0; ; startIndex += googleadsdomain.ManagedCustomerPageSize {
		page, err := c.getManagedCustomerPage(ctx, startIndex)
		if err != nil {
			return nil, err
		}

		customers = append(customers, page.Entries...)

		if len(page.Entries) == 0 || startIndex+googleadsdomain.ManagedCustomerPageSize >= page.TotalNumEntries {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"client_customer_id": c.credentials.ClientCustomerID,
		"customers":          len(customers),
	}).Debug("Contas gerenciadas obtidas do Google Ads")

	return customers, nil
}

func (c *AdsClient) getManagedCustomerPage(ctx context.Context, startIndex int) (*googleadsdomain.ManagedCustomerPage, error) {
	envelope := googleadsdomain.NewManagedCustomerRequest(
		c.cfg.APIVersion,
		c.credentials.ClientCustomerID,
		c.credentials.DeveloperToken,
		userAgent,
		startIndex,
	)

	payload, err := xml.Marshal(envelope)
	if err != nil {
		return nil, &domain.FatalError{Err: fmt.Errorf("erro ao serializar requisição SOAP: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/api/adwords/mcm/%s/ManagedCustomerService",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		bytes.NewReader(append([]byte(xml.Header), payload...)))
	if err != nil {
		return nil, &domain.FatalError{Err: err}
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response googleadsdomain.ManagedCustomerResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, &domain.FatalError{Err: fmt.Errorf("erro ao decodificar resposta SOAP: %w", err)}
	}

	if response.Body.Fault != nil {
		return nil, &domain.FatalError{Err: response.Body.Fault}
	}

	return &response.Body.GetResponse.Rval, nil
}
