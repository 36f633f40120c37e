package domain

import "time"

// DownloadRun registra um arquivo gravado por uma execução
type DownloadRun struct {
	Path         string     `json:"path"`
	ReportType   string     `json:"report_type"`
	ReportDate   *time.Time `json:"report_date,omitempty"`
	RowCount     int        `json:"row_count"`
	AccountCount int        `json:"account_count"`
	DownloadedAt time.Time  `json:"downloaded_at"`
}
