package downloading

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
)

// ServiceFactory cria o ReportService de um conjunto de credenciais
type ServiceFactory func(credentials config.AccountCredentials) (ReportService, error)

// FileRepositoryFactory cria o repositório de arquivos de um conjunto de
// credenciais; folder é vazio quando há um único conjunto.
type FileRepositoryFactory func(cfg config.Download, folder string) ReportFileRepository

// Runner executa o download completo (relatórios diários e estrutura) para
// cada conjunto de credenciais, um de cada vez.
type Runner struct {
	cfg         config.Download
	credentials []config.AccountCredentials
	newService  ServiceFactory
	newFiles    FileRepositoryFactory
	recorder    DownloadRunRecorder
	now         func() time.Time
	sleep       Sleeper
}

func NewRunner(
	cfg config.Download,
	credentials []config.AccountCredentials,
	newService ServiceFactory,
	newFiles FileRepositoryFactory,
	recorder DownloadRunRecorder,
) *Runner {
	return &Runner{
		cfg:         cfg,
		credentials: credentials,
		newService:  newService,
		newFiles:    newFiles,
		recorder:    recorder,
		now:         time.Now,
		sleep:       contextSleep,
	}
}

// WithClock troca a fonte do horário atual (usado nos testes)
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// WithSleeper troca a pausa entre tentativas (usado nos testes)
func (r *Runner) WithSleeper(sleep Sleeper) *Runner {
	r.sleep = sleep
	return r
}

// Run baixa todos os dados. O contexto recebe um run_id quando ainda não tem um.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.credentials) == 0 {
		return domain.ErrNoCredentials
	}

	if err := r.cfg.Validate(); err != nil {
		return err
	}

	reports, err := PerformanceReportsFor(r.cfg.PerformanceReports)
	if err != nil {
		return err
	}

	if log.GetRunID(ctx) == "" {
		ctx, _ = log.WithRunID(ctx)
	}

	startTime := r.now()
	log.ForContext(ctx).WithFields(log.Fields{
		"credential_sets": len(r.credentials),
		"reports":         len(reports),
		"data_dir":        r.cfg.DataDir,
	}).Info("Iniciando download de dados do Google Ads")

	for _, credentials := range r.credentials {
		folder := ""
		if len(r.credentials) > 1 {
			folder = setName(credentials)
		}

		if err := r.runCredentialSet(ctx, credentials, folder, reports); err != nil {
			return errors.Wrapf(err, "conjunto de credenciais %q", setName(credentials))
		}
	}

	log.ForContext(ctx).WithField("duration", r.now().Sub(startTime).String()).
		Info("Download de dados do Google Ads concluído")

	return nil
}

func (r *Runner) runCredentialSet(
	ctx context.Context,
	credentials config.AccountCredentials,
	folder string,
	reports []ReportDefinition,
) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"credential_set": setName(credentials),
		"customer_id":    credentials.ClientCustomerID,
	})
	logger.Info("Processando conjunto de credenciais")

	service, err := r.newService(credentials)
	if err != nil {
		return errors.Wrap(err, "erro ao criar cliente do Google Ads")
	}

	retrier := NewRetrier(r.cfg.MaxRetries, r.cfg.RetryBackoff()).WithSleeper(r.sleep)

	directory := NewAccountDirectory(service, retrier)
	if err := directory.Load(ctx); err != nil {
		return err
	}

	files := r.newFiles(r.cfg, folder)

	performance := NewIncrementalPerformanceDownloader(r.cfg, directory, service, retrier, files, r.recorder).
		WithClock(r.now)
	for _, report := range reports {
		if err := performance.Download(ctx, report); err != nil {
			return err
		}
	}

	structure := NewAccountStructureDownloader(r.cfg, directory, service, retrier, files, r.recorder).
		WithClock(r.now)
	return structure.Download(ctx)
}

func setName(credentials config.AccountCredentials) string {
	if credentials.Name != "" {
		return credentials.Name
	}
	return credentials.ClientCustomerID
}
