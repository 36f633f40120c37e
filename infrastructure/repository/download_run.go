package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/google-ads-downloader/infrastructure/database/postgres"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/utils"
)

const (
	downloadRunsTable = "report_downloads"

	createDownloadRunsTable = `CREATE TABLE IF NOT EXISTS report_downloads (
	path          TEXT PRIMARY KEY,
	report_type   TEXT NOT NULL,
	report_date   DATE,
	row_count     INTEGER NOT NULL,
	account_count INTEGER NOT NULL,
	downloaded_at TIMESTAMPTZ NOT NULL
)`
)

// DownloadRunRepository registra os arquivos gravados. Apenas escrita: a decisão
// de pular ou baixar um dia nunca consulta o banco.
type DownloadRunRepository interface {
	Record(ctx context.Context, run *domain.DownloadRun) error
}

type downloadRunRepository struct {
	conn postgres.Queryer
}

func NewDownloadRunRepository(conn postgres.Queryer) DownloadRunRepository {
	return &downloadRunRepository{
		conn: conn,
	}
}

// EnsureDownloadRunsTable cria a tabela de registro quando ela ainda não existe
func EnsureDownloadRunsTable(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.ExecContext(ctx, createDownloadRunsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", downloadRunsTable, err)
	}
	return nil
}

func (r *downloadRunRepository) Record(ctx context.Context, run *domain.DownloadRun) error {
	query, args, err := buildRecordQuery(run)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar download: %w", err)
	}

	return nil
}

func buildRecordQuery(run *domain.DownloadRun) (string, []interface{}, error) {
	var reportDate interface{}
	if run.ReportDate != nil {
		reportDate = run.ReportDate.Format(utils.DateLayout)
	}

	return squirrel.
		Insert(downloadRunsTable).
		Columns("path", "report_type", "report_date", "row_count", "account_count", "downloaded_at").
		Values(run.Path, run.ReportType, reportDate, run.RowCount, run.AccountCount, run.DownloadedAt).
		Suffix(`ON CONFLICT (path) DO UPDATE SET
			report_type = EXCLUDED.report_type,
			report_date = EXCLUDED.report_date,
			row_count = EXCLUDED.row_count,
			account_count = EXCLUDED.account_count,
			downloaded_at = EXCLUDED.downloaded_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

type noopDownloadRunRepository struct{}

// NewNoopDownloadRunRepository é usado quando o banco de dados está desabilitado
func NewNoopDownloadRunRepository() DownloadRunRepository {
	return noopDownloadRunRepository{}
}

func (noopDownloadRunRepository) Record(context.Context, *domain.DownloadRun) error {
	return nil
}
