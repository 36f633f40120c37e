package main

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vfg2006/google-ads-downloader/infrastructure/database/postgres"
	"github.com/vfg2006/google-ads-downloader/infrastructure/integrator/googleads"
	"github.com/vfg2006/google-ads-downloader/infrastructure/repository"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/downloading"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "google-ads-downloader",
		Short: "Baixa relatórios de desempenho do Google Ads para arquivos locais",
		Long: `google-ads-downloader baixa relatórios diários de desempenho e a estrutura
das contas do Google Ads para arquivos JSON/CSV compactados em DATA_DIR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDownloadCmd())
	root.AddCommand(newRefreshTokenCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newIssueTokenCmd())

	return root
}

// downloadFlags são as sobrescritas de configuração aceitas pela linha de comando
type downloadFlags struct {
	dataDir                string
	firstDate              string
	redownloadWindow       int
	outputFileVersion      string
	maxRetries             int
	retryBackoffFactor     int
	ignoreRemovedCampaigns bool
	performanceReports     []string
	accounts               []string
}

func (f *downloadFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.dataDir, "data-dir", "", "diretório onde os relatórios são gravados (DATA_DIR)")
	flags.StringVar(&f.firstDate, "first-date", "", "primeiro dia baixado, formato 2006-01-02 (FIRST_DATE)")
	flags.IntVar(&f.redownloadWindow, "redownload-window", 0, "dias recentes sempre baixados novamente (REDOWNLOAD_WINDOW)")
	flags.StringVar(&f.outputFileVersion, "output-file-version", "", "sufixo de versão dos arquivos (OUTPUT_FILE_VERSION)")
	flags.IntVar(&f.maxRetries, "max-retries", 0, "tentativas por relatório em caso de erro transitório (MAX_RETRIES)")
	flags.IntVar(&f.retryBackoffFactor, "retry-backoff-factor", 0, "segundos de espera multiplicados pela tentativa (RETRY_BACKOFF_FACTOR)")
	flags.BoolVar(&f.ignoreRemovedCampaigns, "ignore-removed-campaigns", false, "ignora campanhas removidas na estrutura (IGNORE_REMOVED_CAMPAIGNS)")
	flags.StringSliceVar(&f.performanceReports, "performance-reports", nil, "relatórios diários: ad, adgroup, campaign, account (PERFORMANCE_REPORTS)")
	flags.StringArrayVar(&f.accounts, "accounts", nil,
		"conjunto de credenciais name,client_customer_id,developer_token,oauth2_client_id,oauth2_client_secret,oauth2_refresh_token; pode ser repetido")
}

// overrides devolve apenas as flags informadas explicitamente, nas chaves da configuração
func (f *downloadFlags) overrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := map[string]interface{}{}
	set := func(flag, key string, value interface{}) {
		if flags.Changed(flag) {
			overrides[key] = value
		}
	}

	set("data-dir", "DATA_DIR", f.dataDir)
	set("first-date", "FIRST_DATE", f.firstDate)
	set("redownload-window", "REDOWNLOAD_WINDOW", f.redownloadWindow)
	set("output-file-version", "OUTPUT_FILE_VERSION", f.outputFileVersion)
	set("max-retries", "MAX_RETRIES", f.maxRetries)
	set("retry-backoff-factor", "RETRY_BACKOFF_FACTOR", f.retryBackoffFactor)
	set("ignore-removed-campaigns", "IGNORE_REMOVED_CAMPAIGNS", f.ignoreRemovedCampaigns)
	set("performance-reports", "PERFORMANCE_REPORTS", strings.Join(f.performanceReports, ","))
	set("accounts", "GOOGLE_ADS_ACCOUNTS", strings.Join(f.accounts, ";"))

	return overrides
}

// loadConfig carrega a configuração e ajusta o nível de log
func loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}
	setLogLevel(cfg.App.LogLevel)
	return cfg, nil
}

// newRunner liga o núcleo de download ao Google Ads e aos arquivos locais
func newRunner(ctx context.Context, cfg *config.Config, recorder downloading.DownloadRunRecorder) *downloading.Runner {
	newService := func(credentials config.AccountCredentials) (downloading.ReportService, error) {
		integrator, err := googleads.NewFromCredentials(ctx, cfg.GoogleAds, credentials)
		if err != nil {
			return nil, err
		}
		return integrator, nil
	}

	newFiles := func(download config.Download, folder string) downloading.ReportFileRepository {
		return repository.NewReportFileRepository(download, folder)
	}

	return downloading.NewRunner(cfg.Download, cfg.Accounts, newService, newFiles, recorder)
}

// newRecorder abre o registro de downloads no PostgreSQL quando habilitado.
// A função devolvida fecha a conexão.
func newRecorder(ctx context.Context, dbConfig config.Database) (downloading.DownloadRunRecorder, func(), error) {
	if !dbConfig.Enabled {
		return repository.NewNoopDownloadRunRepository(), func() {}, nil
	}

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, nil, err
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return repository.EnsureDownloadRunsTable(ctx, tx)
	})
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	return repository.NewDownloadRunRepository(conn), func() { conn.Close() }, nil
}
