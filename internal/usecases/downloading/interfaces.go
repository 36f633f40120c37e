package downloading

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/google-ads-downloader/internal/domain"
)

// ReportService define a interface para buscar relatórios e contas na API do Google Ads
type ReportService interface {
	// Fetch baixa um relatório de uma conta e devolve as linhas na ordem da resposta
	Fetch(ctx context.Context, req domain.ReportRequest) ([]domain.ReportRow, error)

	// ListAccounts lista as contas abaixo da conta gerente, incluindo outras gerentes
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// ReportFileRepository define onde e como os arquivos de saída são gravados
type ReportFileRepository interface {
	// DailyReportPath retorna o caminho do arquivo diário de um tipo de relatório
	DailyReportPath(date time.Time, reportType domain.ReportType) string

	// StructurePath retorna o caminho do arquivo de estrutura das contas
	StructurePath() string

	// Exists informa se já existe um arquivo completo no caminho
	Exists(path string) (bool, error)

	// SaveDailyReport grava as linhas como JSON compactado, de forma atômica
	SaveDailyReport(path string, rows []domain.ReportRow) error

	// SaveAccountStructure grava o cabeçalho e as linhas separados por tab, de forma atômica
	SaveAccountStructure(path string, header []string, records [][]string) error
}

// DownloadRunRecorder registra os arquivos gravados (opcional)
type DownloadRunRecorder interface {
	Record(ctx context.Context, run *domain.DownloadRun) error
}

// AccountLister fornece as contas carregadas para uma execução
type AccountLister interface {
	Accounts() []*domain.Account
}
