package domain

import (
	"fmt"
	"strings"
	"time"
)

type ReportType string

const (
	AdPerformanceReport       ReportType = "AD_PERFORMANCE_REPORT"
	AdGroupPerformanceReport  ReportType = "ADGROUP_PERFORMANCE_REPORT"
	CampaignPerformanceReport ReportType = "CAMPAIGN_PERFORMANCE_REPORT"
	AccountPerformanceReport  ReportType = "ACCOUNT_PERFORMANCE_REPORT"
)

var reportFileNames = map[ReportType]string{
	AdPerformanceReport:       "ad-performance",
	AdGroupPerformanceReport:  "adgroup-performance",
	CampaignPerformanceReport: "campaign-performance",
	AccountPerformanceReport:  "account-performance",
}

var reportShortNames = map[string]ReportType{
	"ad":       AdPerformanceReport,
	"adgroup":  AdGroupPerformanceReport,
	"campaign": CampaignPerformanceReport,
	"account":  AccountPerformanceReport,
}

// FileName é o nome usado nos arquivos diários do relatório
func (r ReportType) FileName() string {
	if name, ok := reportFileNames[r]; ok {
		return name
	}
	return strings.ToLower(string(r))
}

// ParseReportType aceita o nome curto (ad, adgroup, campaign, account) ou o nome da API
func ParseReportType(name string) (ReportType, error) {
	normalized := strings.TrimSpace(name)
	if reportType, ok := reportShortNames[strings.ToLower(normalized)]; ok {
		return reportType, nil
	}
	if _, ok := reportFileNames[ReportType(strings.ToUpper(normalized))]; ok {
		return ReportType(strings.ToUpper(normalized)), nil
	}
	return "", fmt.Errorf("tipo de relatório desconhecido: %q", name)
}

type Operator string

const (
	OperatorIn          Operator = "IN"
	OperatorNotIn       Operator = "NOT_IN"
	OperatorEquals      Operator = "EQUALS"
	OperatorNotEquals   Operator = "NOT_EQUALS"
	OperatorGreaterThan Operator = "GREATER_THAN"
	OperatorLessThan    Operator = "LESS_THAN"
)

// Predicate é uma cláusula de filtro do relatório
type Predicate struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Values   []string `json:"values"`
}

// ReportRow é uma linha do relatório: nome de exibição do campo -> valor
type ReportRow map[string]string

// ReportRequest identifica uma busca de relatório para uma conta
type ReportRequest struct {
	CustomerID string
	ReportType ReportType
	Fields     []string
	Predicates []Predicate
	// Date restringe o relatório a um único dia; nil significa o dia corrente
	Date *time.Time
}

// DateString retorna a data no formato ISO ou "TODAY" quando não há filtro de data
func (r ReportRequest) DateString() string {
	if r.Date == nil {
		return "TODAY"
	}
	return r.Date.Format("2006-01-02")
}
