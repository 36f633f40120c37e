package googleadsdomain

import (
	"encoding/xml"
	"fmt"
)

const (
	// DateRangeCustom filtra o relatório pelo intervalo em DateRange
	DateRangeCustom = "CUSTOM_DATE"
	// DateRangeToday é usado quando nenhuma data é informada
	DateRangeToday = "TODAY"

	DownloadFormatTSV = "TSV"
)

// ReportDefinition é a definição de relatório enviada no campo __rdxml
type ReportDefinition struct {
	XMLName        xml.Name `xml:"reportDefinition"`
	Namespace      string   `xml:"xmlns,attr"`
	Selector       Selector `xml:"selector"`
	ReportName     string   `xml:"reportName"`
	ReportType     string   `xml:"reportType"`
	DateRangeType  string   `xml:"dateRangeType"`
	DownloadFormat string   `xml:"downloadFormat"`
}

type Selector struct {
	Fields     []string    `xml:"fields"`
	Predicates []Predicate `xml:"predicates"`
	DateRange  *DateRange  `xml:"dateRange,omitempty"`
}

type Predicate struct {
	Field    string   `xml:"field"`
	Operator string   `xml:"operator"`
	Values   []string `xml:"values"`
}

// DateRange usa o formato yyyyMMdd
type DateRange struct {
	Min string `xml:"min"`
	Max string `xml:"max"`
}

// CommonNamespace retorna o namespace dos tipos comuns da versão da API
func CommonNamespace(version string) string {
	return fmt.Sprintf("https://adwords.google.com/api/adwords/cm/%s", version)
}

// Encode serializa a definição como XML
func (d *ReportDefinition) Encode() (string, error) {
	encoded, err := xml.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// ReportDownloadError é o corpo XML devolvido pelo endpoint de relatórios em caso de erro
type ReportDownloadError struct {
	XMLName  xml.Name `xml:"reportDownloadError"`
	APIError struct {
		Type      string `xml:"type"`
		Trigger   string `xml:"trigger"`
		FieldPath string `xml:"fieldPath"`
	} `xml:"ApiError"`
}

func (e *ReportDownloadError) Error() string {
	msg := e.APIError.Type
	if e.APIError.Trigger != "" {
		msg += " (trigger: " + e.APIError.Trigger + ")"
	}
	if e.APIError.FieldPath != "" {
		msg += " (field: " + e.APIError.FieldPath + ")"
	}
	return msg
}
