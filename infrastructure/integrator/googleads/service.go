package googleads

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads/adsclient"
	googleadsdomain "github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/utils"
)

// GoogleAdsIntegrator implementa o ReportService sobre a API de relatórios do Google Ads
type GoogleAdsIntegrator struct {
	Client adsclient.Client
}

func New(client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		Client: client,
	}
}

// NewFromCredentials monta o cliente autenticado de um conjunto de credenciais.
// Nenhuma chamada à API é feita aqui.
func NewFromCredentials(ctx context.Context, cfg config.GoogleAds, credentials config.AccountCredentials) (*GoogleAdsIntegrator, error) {
	if credentials.ClientCustomerID == "" {
		return nil, fmt.Errorf("%w: client customer id is required", domain.ErrInvalidCredentials)
	}
	if credentials.DeveloperToken == "" || credentials.OAuth2RefreshToken == "" {
		return nil, fmt.Errorf("%w: developer token and refresh token are required", domain.ErrInvalidCredentials)
	}

	httpClient := adsclient.NewHTTPClient(ctx, cfg, credentials)
	return New(adsclient.NewClient(cfg, credentials, httpClient)), nil
}

func (s *GoogleAdsIntegrator) Fetch(ctx context.Context, req domain.ReportRequest) ([]domain.ReportRow, error) {
	report, err := s.Client.DownloadReport(ctx, req.CustomerID, NewReportDefinition(req))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": req.CustomerID,
			"report_type": req.ReportType,
			"date":        req.DateString(),
			"error":       err.Error(),
		}).Debug("reports: failed to download report from API")
		return nil, err
	}

	rows, err := ConvertReport(report)
	if err != nil {
		return nil, &domain.FatalError{Err: fmt.Errorf("erro ao converter relatório %s: %w", req.ReportType, err)}
	}

	return rows, nil
}

func (s *GoogleAdsIntegrator) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	customers, err := s.Client.GetManagedCustomers(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(customers))
	for _, customer := range customers {
		accounts = append(accounts, FactoryAccount(customer))
	}
	return accounts, nil
}

// NewReportDefinition traduz a requisição para a definição XML da API
func NewReportDefinition(req domain.ReportRequest) *googleadsdomain.ReportDefinition {
	predicates := make([]googleadsdomain.Predicate, 0, len(req.Predicates))
	for _, p := range req.Predicates {
		predicates = append(predicates, googleadsdomain.Predicate{
			Field:    p.Field,
			Operator: string(p.Operator),
			Values:   p.Values,
		})
	}

	definition := &googleadsdomain.ReportDefinition{
		Selector: googleadsdomain.Selector{
			Fields:     req.Fields,
			Predicates: predicates,
		},
		ReportName:     utils.UniqueName(string(req.ReportType)),
		ReportType:     string(req.ReportType),
		DateRangeType:  googleadsdomain.DateRangeToday,
		DownloadFormat: googleadsdomain.DownloadFormatTSV,
	}

	if req.Date != nil {
		day := req.Date.Format("20060102")
		definition.DateRangeType = googleadsdomain.DateRangeCustom
		definition.Selector.DateRange = &googleadsdomain.DateRange{Min: day, Max: day}
	}

	return definition
}

// ConvertReport transforma o relatório TSV em linhas. A primeira linha é o título
// do relatório, a segunda o cabeçalho; as duas últimas são a linha de totais e a
// quebra de linha final.
func ConvertReport(report string) ([]domain.ReportRow, error) {
	lines := strings.Split(report, "\n")
	if len(lines) < 4 {
		return []domain.ReportRow{}, nil
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[1:len(lines)-2], "\n")))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []domain.ReportRow{}, nil
	}

	keys := records[0]
	rows := make([]domain.ReportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.ReportRow, len(keys))
		for i := 0; i < len(keys) && i < len(record); i++ {
			row[keys[i]] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// FactoryAccount converte uma conta gerenciada; os rótulos da conta são os nomes dos rótulos
func FactoryAccount(customer googleadsdomain.ManagedCustomer) *domain.Account {
	labels := make([]string, 0, len(customer.AccountLabels))
	for _, label := range customer.AccountLabels {
		labels = append(labels, label.Name)
	}

	account := &domain.Account{
		ID:               customer.CustomerID,
		Name:             customer.Name,
		Labels:           labels,
		CanManageClients: customer.CanManageClients,
	}
	if customer.CurrencyCode != "" {
		currency := customer.CurrencyCode
		account.CurrencyCode = &currency
	}

	return account
}
