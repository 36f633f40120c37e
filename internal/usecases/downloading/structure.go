package downloading

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/labels"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

// Colunas do relatório TSV, pelo nome de exibição devolvido pela API
const (
	columnAdID         = "Ad ID"
	columnAd           = "Ad"
	columnAdGroupID    = "Ad group ID"
	columnAdGroup      = "Ad group"
	columnCampaignID   = "Campaign ID"
	columnCampaign     = "Campaign"
	columnLabels       = "Labels"
	columnAdType       = "Ad type"
	columnAdState      = "Ad state"
	vendorNullMarker   = "--"
	attributeAdType    = "Ad type"
	attributeAdState   = "Ad state"
	structureReportTag = "account-structure"
)

// StructureHeader é o cabeçalho fixo do arquivo de estrutura
var StructureHeader = []string{
	"Ad Id", "Ad", "Ad Group Id", "Ad Group", "Campaign Id",
	"Campaign", "Customer Id", "Customer Name", "Attributes", "Currency Code",
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AccountStructureDownloader monta uma linha por anúncio com os atributos da
// conta, da campanha, do grupo de anúncios e do próprio anúncio, e regrava o
// arquivo de estrutura inteiro a cada execução.
type AccountStructureDownloader struct {
	cfg      config.Download
	accounts AccountLister
	service  ReportService
	retrier  *Retrier
	files    ReportFileRepository
	recorder DownloadRunRecorder
	now      func() time.Time
}

func NewAccountStructureDownloader(
	cfg config.Download,
	accounts AccountLister,
	service ReportService,
	retrier *Retrier,
	files ReportFileRepository,
	recorder DownloadRunRecorder,
) *AccountStructureDownloader {
	return &AccountStructureDownloader{
		cfg:      cfg,
		accounts: accounts,
		service:  service,
		retrier:  retrier,
		files:    files,
		recorder: recorder,
		now:      time.Now,
	}
}

// WithClock troca a fonte do horário atual (usado nos testes)
func (d *AccountStructureDownloader) WithClock(now func() time.Time) *AccountStructureDownloader {
	d.now = now
	return d
}

// adRecord é um anúncio já com os atributos próprios extraídos
type adRecord struct {
	row        domain.ReportRow
	attributes domain.LabelAttributes
}

// Download gera o arquivo de estrutura. Qualquer falha em uma conta
// interrompe a execução e o arquivo anterior é mantido.
func (d *AccountStructureDownloader) Download(ctx context.Context) error {
	accounts := d.accounts.Accounts()
	path := d.files.StructurePath()
	logger := log.ForContext(ctx).WithField("report_type", structureReportTag)

	logger.WithField("accounts", len(accounts)).Info("Iniciando download da estrutura das contas")

	records := make([][]string, 0)
	for _, account := range accounts {
		accountRecords, err := d.accountRecords(ctx, account)
		if err != nil {
			return errors.Wrapf(err, "erro ao montar estrutura da conta %s", account.ID)
		}
		records = append(records, accountRecords...)
	}

	if err := d.files.SaveAccountStructure(path, StructureHeader, records); err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"ads":  len(records),
		"path": path,
	}).Info("Estrutura das contas gravada")

	recordRun(ctx, d.recorder, &domain.DownloadRun{
		Path:         path,
		ReportType:   structureReportTag,
		RowCount:     len(records),
		AccountCount: len(accounts),
		DownloadedAt: d.now(),
	})

	return nil
}

func (d *AccountStructureDownloader) accountRecords(ctx context.Context, account *domain.Account) ([][]string, error) {
	log.ForContext(ctx).WithFields(log.Fields{
		"customer_id":   account.ID,
		"customer_name": account.Name,
	}).Info("Buscando estrutura da conta")

	campaignAttributes, err := d.attributesByID(ctx, account.ID, d.campaignLookup(), columnCampaignID)
	if err != nil {
		return nil, err
	}

	adGroupAttributes, err := d.attributesByID(ctx, account.ID, adGroupLookup, columnAdGroupID)
	if err != nil {
		return nil, err
	}

	ads, err := d.ads(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	accountAttributes := domain.LabelAttributes(labels.ParseAll(account.Labels))

	records := make([][]string, 0, len(ads))
	for _, ad := range ads {
		attributes := domain.MergeAttributes(
			accountAttributes,
			campaignAttributes[ad.row[columnCampaignID]],
			adGroupAttributes[ad.row[columnAdGroupID]],
			ad.attributes,
		)

		encoded, err := json.MarshalToString(attributes)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar atributos")
		}

		records = append(records, []string{
			ad.row[columnAdID],
			ad.row[columnAd],
			ad.row[columnAdGroupID],
			ad.row[columnAdGroup],
			ad.row[columnCampaignID],
			ad.row[columnCampaign],
			account.ID,
			account.Name,
			encoded,
			account.Currency(),
		})
	}

	return records, nil
}

// attributesByID busca um relatório de rótulos e indexa os atributos pela coluna de id
func (d *AccountStructureDownloader) attributesByID(
	ctx context.Context,
	customerID string,
	lookup ReportDefinition,
	idColumn string,
) (map[string]domain.LabelAttributes, error) {
	rows, err := d.retrier.FetchReport(ctx, d.service, domain.ReportRequest{
		CustomerID: customerID,
		ReportType: lookup.Type,
		Fields:     lookup.Fields,
		Predicates: lookup.Predicates,
	})
	if err != nil {
		return nil, err
	}

	attributes := make(map[string]domain.LabelAttributes, len(rows))
	for _, row := range rows {
		attributes[row[idColumn]] = labels.Parse(row[columnLabels])
	}
	return attributes, nil
}

// ads busca os anúncios da conta. Um id repetido mantém a primeira posição e
// os dados da última linha.
func (d *AccountStructureDownloader) ads(ctx context.Context, customerID string) ([]adRecord, error) {
	rows, err := d.retrier.FetchReport(ctx, d.service, domain.ReportRequest{
		CustomerID: customerID,
		ReportType: adLookup.Type,
		Fields:     adLookup.Fields,
		Predicates: adLookup.Predicates,
	})
	if err != nil {
		return nil, err
	}

	positions := make(map[string]int, len(rows))
	ads := make([]adRecord, 0, len(rows))

	for _, row := range rows {
		attributes := domain.LabelAttributes(labels.Parse(row[columnLabels]))
		if value, ok := present(row, columnAdType); ok {
			attributes[attributeAdType] = value
		}
		if value, ok := present(row, columnAdState); ok {
			attributes[attributeAdState] = value
		}

		record := adRecord{row: row, attributes: attributes}
		if position, ok := positions[row[columnAdID]]; ok {
			ads[position] = record
			continue
		}
		positions[row[columnAdID]] = len(ads)
		ads = append(ads, record)
	}

	return ads, nil
}

func (d *AccountStructureDownloader) campaignLookup() ReportDefinition {
	statuses := []string{"ENABLED", "PAUSED", "REMOVED"}
	if d.cfg.IgnoreRemovedCampaigns {
		statuses = []string{"ENABLED", "PAUSED"}
	}

	return ReportDefinition{
		Type:   domain.CampaignPerformanceReport,
		Fields: []string{"CampaignId", "Labels"},
		Predicates: []domain.Predicate{
			{Field: "CampaignStatus", Operator: domain.OperatorIn, Values: statuses},
		},
	}
}

var adGroupLookup = ReportDefinition{
	Type:   domain.AdGroupPerformanceReport,
	Fields: []string{"AdGroupId", "Labels"},
	Predicates: []domain.Predicate{
		{Field: "AdGroupStatus", Operator: domain.OperatorIn, Values: []string{"ENABLED", "PAUSED", "REMOVED"}},
	},
}

var adLookup = ReportDefinition{
	Type: domain.AdPerformanceReport,
	Fields: []string{"Id", "AdGroupId", "AdGroupName", "CampaignId", "CampaignName",
		"Labels", "Headline", "AdType", "Status"},
	Predicates: []domain.Predicate{
		{Field: "Status", Operator: domain.OperatorIn, Values: []string{"ENABLED", "PAUSED", "DISABLED"}},
	},
}

// present informa se a coluna veio preenchida; a API usa "--" para valores nulos
func present(row domain.ReportRow, column string) (string, bool) {
	value, ok := row[column]
	if !ok || value == "" || value == vendorNullMarker {
		return "", false
	}
	return value, true
}
