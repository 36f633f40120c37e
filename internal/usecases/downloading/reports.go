package downloading

import (
	"strings"

	"github.com/vfg2006/google-ads-downloader/internal/domain"
)

// ReportDefinition descreve os campos e filtros de um relatório de desempenho diário
type ReportDefinition struct {
	Type       domain.ReportType
	Fields     []string
	Predicates []domain.Predicate
}

var withImpressions = domain.Predicate{
	Field:    "Impressions",
	Operator: domain.OperatorGreaterThan,
	Values:   []string{"0"},
}

var performanceReports = map[domain.ReportType]ReportDefinition{
	domain.AdPerformanceReport: {
		Type: domain.AdPerformanceReport,
		Fields: []string{"Date", "Id", "AdGroupId", "Device", "AdNetworkType2",
			"ActiveViewImpressions", "AveragePosition", "Clicks", "Conversions",
			"ConversionValue", "Cost", "Impressions"},
		Predicates: []domain.Predicate{
			{Field: "Status", Operator: domain.OperatorIn, Values: []string{"ENABLED", "PAUSED", "DISABLED"}},
			withImpressions,
		},
	},
	domain.AdGroupPerformanceReport: {
		Type: domain.AdGroupPerformanceReport,
		Fields: []string{"Date", "AdGroupId", "CampaignId", "Device", "AdNetworkType2",
			"ActiveViewImpressions", "Clicks", "Conversions", "ConversionValue", "Cost", "Impressions"},
		Predicates: []domain.Predicate{
			{Field: "AdGroupStatus", Operator: domain.OperatorIn, Values: []string{"ENABLED", "PAUSED", "REMOVED"}},
			withImpressions,
		},
	},
	domain.CampaignPerformanceReport: {
		Type: domain.CampaignPerformanceReport,
		Fields: []string{"Date", "CampaignId", "Device", "AdNetworkType2",
			"ActiveViewImpressions", "Clicks", "Conversions", "ConversionValue", "Cost", "Impressions"},
		Predicates: []domain.Predicate{
			{Field: "CampaignStatus", Operator: domain.OperatorIn, Values: []string{"ENABLED", "PAUSED", "REMOVED"}},
			withImpressions,
		},
	},
	domain.AccountPerformanceReport: {
		Type: domain.AccountPerformanceReport,
		Fields: []string{"Date", "ExternalCustomerId", "Device", "AdNetworkType2",
			"ActiveViewImpressions", "Clicks", "Conversions", "ConversionValue", "Cost", "Impressions"},
		Predicates: []domain.Predicate{withImpressions},
	},
}

// PerformanceReport retorna a definição padrão de um tipo de relatório
func PerformanceReport(reportType domain.ReportType) (ReportDefinition, bool) {
	def, ok := performanceReports[reportType]
	return def, ok
}

// PerformanceReportsFor resolve os nomes configurados (ad, adgroup, ...) em
// definições, na ordem informada e sem repetições.
func PerformanceReportsFor(names []string) ([]ReportDefinition, error) {
	seen := make(map[domain.ReportType]bool)
	defs := make([]ReportDefinition, 0, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		reportType, err := domain.ParseReportType(name)
		if err != nil {
			return nil, err
		}
		if seen[reportType] {
			continue
		}
		seen[reportType] = true
		defs = append(defs, performanceReports[reportType])
	}

	return defs, nil
}
