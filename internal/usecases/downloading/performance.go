package downloading

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
	"github.com/vfg2006/google-ads-downloader/pkg/utils"
)

// IncrementalPerformanceDownloader grava um arquivo por dia, de ontem até FirstDate.
// Dias que já têm arquivo e estão fora da janela de novo download são pulados.
type IncrementalPerformanceDownloader struct {
	cfg      config.Download
	accounts AccountLister
	service  ReportService
	retrier  *Retrier
	files    ReportFileRepository
	recorder DownloadRunRecorder
	now      func() time.Time
}

func NewIncrementalPerformanceDownloader(
	cfg config.Download,
	accounts AccountLister,
	service ReportService,
	retrier *Retrier,
	files ReportFileRepository,
	recorder DownloadRunRecorder,
) *IncrementalPerformanceDownloader {
	return &IncrementalPerformanceDownloader{
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
func (d *IncrementalPerformanceDownloader) WithClock(now func() time.Time) *IncrementalPerformanceDownloader {
	d.now = now
	return d
}

// Download processa todos os dias de um tipo de relatório. O primeiro erro que
// sobrevive às novas tentativas interrompe o tipo de relatório; o dia que falhou
// não fica gravado e será baixado na próxima execução.
func (d *IncrementalPerformanceDownloader) Download(ctx context.Context, def ReportDefinition) error {
	firstDate, err := d.cfg.FirstDateTime()
	if err != nil {
		return err
	}

	yesterday := utils.Yesterday(d.now())
	dates := utils.DatesDescending(firstDate, yesterday)
	accounts := d.accounts.Accounts()

	logger := log.ForContext(ctx).WithField("report_type", def.Type.FileName())
	logger.WithFields(log.Fields{
		"first_date":        firstDate.Format(utils.DateLayout),
		"last_date":         yesterday.Format(utils.DateLayout),
		"days":              len(dates),
		"accounts":          len(accounts),
		"redownload_window": d.cfg.RedownloadWindow,
	}).Info("Iniciando download incremental de relatório de desempenho")

	downloaded, skipped := 0, 0
	for _, date := range dates {
		path := d.files.DailyReportPath(date, def.Type)

		exists, err := d.files.Exists(path)
		if err != nil {
			return err
		}

		if exists && utils.DaysBetween(date, yesterday) > d.cfg.RedownloadWindow {
			skipped++
			logger.WithFields(log.Fields{
				"date": date.Format(utils.DateLayout),
				"path": path,
			}).Debug("Arquivo já existe fora da janela de novo download, pulando")
			continue
		}

		if err := d.downloadDay(ctx, def, date, path, accounts); err != nil {
			return errors.Wrapf(err, "erro ao baixar %s de %s", def.Type.FileName(), date.Format(utils.DateLayout))
		}
		downloaded++
	}

	logger.WithFields(log.Fields{
		"downloaded": downloaded,
		"skipped":    skipped,
	}).Info("Download incremental de relatório de desempenho concluído")

	return nil
}

func (d *IncrementalPerformanceDownloader) downloadDay(
	ctx context.Context,
	def ReportDefinition,
	date time.Time,
	path string,
	accounts []*domain.Account,
) error {
	rows := make([]domain.ReportRow, 0)

	for _, account := range accounts {
		day := date
		accountRows, err := d.retrier.FetchReport(ctx, d.service, domain.ReportRequest{
			CustomerID: account.ID,
			ReportType: def.Type,
			Fields:     def.Fields,
			Predicates: def.Predicates,
			Date:       &day,
		})
		if err != nil {
			return errors.Wrapf(err, "conta %s", account.ID)
		}
		rows = append(rows, accountRows...)
	}

	if err := d.files.SaveDailyReport(path, rows); err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report_type": def.Type.FileName(),
		"date":        date.Format(utils.DateLayout),
		"rows":        len(rows),
		"path":        path,
	}).Info("Relatório diário gravado")

	day := date
	recordRun(ctx, d.recorder, &domain.DownloadRun{
		Path:         path,
		ReportType:   def.Type.FileName(),
		ReportDate:   &day,
		RowCount:     len(rows),
		AccountCount: len(accounts),
		DownloadedAt: d.now(),
	})

	return nil
}

// recordRun registra o arquivo gravado; falhas no registro não interrompem o download
func recordRun(ctx context.Context, recorder DownloadRunRecorder, run *domain.DownloadRun) {
	if recorder == nil {
		return
	}
	if err := recorder.Record(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).WithField("path", run.Path).
			Warn("Erro ao registrar download no banco de dados")
	}
}
