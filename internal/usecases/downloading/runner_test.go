package downloading

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/google-ads-downloader/infrastructure/repository"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/internal/usecases/downloading/mocks"
	"github.com/vfg2006/google-ads-downloader/pkg/log"
	"go.uber.org/mock/gomock"
)

func fileRepositoryFactory(cfg config.Download, folder string) ReportFileRepository {
	return repository.NewReportFileRepository(cfg, folder)
}

// newRunnerService cria um ReportService com uma conta cliente e uma conta gerente
func newRunnerService(t *testing.T, ctrl *gomock.Controller, customerID string) *mocks.MockReportService {
	service := mocks.NewMockReportService(ctrl)
	service.EXPECT().ListAccounts(gomock.Any()).Return([]*domain.Account{
		{ID: "mcc-" + customerID, CanManageClients: true},
		{ID: customerID, Name: "Conta " + customerID},
	}, nil)
	service.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.ReportRequest) ([]domain.ReportRow, error) {
			assert.NotEqual(t, "mcc-"+customerID, req.CustomerID)
			return stubRows("1")(ctx, req)
		}).
		AnyTimes()
	return service
}

func TestRunner_Run_SingleCredentialSet(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	cfg := testDownloadConfig(t)
	cfg.FirstDate = "2024-01-08"
	service := newRunnerService(t, ctrl, "111")

	runner := NewRunner(
		cfg,
		[]config.AccountCredentials{{Name: "principal", ClientCustomerID: "999"}},
		func(config.AccountCredentials) (ReportService, error) { return service, nil },
		fileRepositoryFactory,
		nil,
	).WithClock(testNow).WithSleeper((&recordingSleeper{}).sleep)

	require.NoError(t, runner.Run(context.Background()))

	written := listFiles(t, cfg.DataDir)
	sort.Strings(written)
	assert.Equal(t, []string{
		filepath.Join("2024", "01", "08", "google-ads", "ad-performance_v5.json.gz"),
		filepath.Join("2024", "01", "09", "google-ads", "ad-performance_v5.json.gz"),
		"google-ads-account-structure_v5.csv.gz",
	}, written)
}

func TestRunner_Run_MultipleCredentialSets(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	cfg := testDownloadConfig(t)
	cfg.FirstDate = "2024-01-09"
	cfg.PerformanceReports = []string{"ad", "campaign", "ad"}
	services := map[string]ReportService{
		"br": newRunnerService(t, ctrl, "111"),
		"mx": newRunnerService(t, ctrl, "222"),
	}

	runner := NewRunner(
		cfg,
		[]config.AccountCredentials{
			{Name: "br", ClientCustomerID: "900"},
			{Name: "mx", ClientCustomerID: "901"},
		},
		func(credentials config.AccountCredentials) (ReportService, error) {
			return services[credentials.Name], nil
		},
		fileRepositoryFactory,
		nil,
	).WithClock(testNow)

	require.NoError(t, runner.Run(context.Background()))

	written := listFiles(t, cfg.DataDir)
	sort.Strings(written)
	assert.Equal(t, []string{
		filepath.Join("2024", "01", "09", "google-ads", "br", "ad-performance_v5.json.gz"),
		filepath.Join("2024", "01", "09", "google-ads", "br", "campaign-performance_v5.json.gz"),
		filepath.Join("2024", "01", "09", "google-ads", "mx", "ad-performance_v5.json.gz"),
		filepath.Join("2024", "01", "09", "google-ads", "mx", "campaign-performance_v5.json.gz"),
		"google-ads-account-structure_v5_br.csv.gz",
		"google-ads-account-structure_v5_mx.csv.gz",
	}, written)

	rows := readDailyFile(t, filepath.Join(cfg.DataDir, "2024", "01", "09", "google-ads", "mx", "ad-performance_v5.json.gz"))
	require.Len(t, rows, 1)
	assert.Equal(t, "222", rows[0]["Customer ID"])
}

func TestRunner_Run_Errors(t *testing.T) {
	log.SetupTestLogger()

	t.Run("Sem credenciais", func(t *testing.T) {
		runner := NewRunner(testDownloadConfig(t), nil, nil, fileRepositoryFactory, nil)

		assert.ErrorIs(t, runner.Run(context.Background()), domain.ErrNoCredentials)
	})

	t.Run("Relatório desconhecido", func(t *testing.T) {
		cfg := testDownloadConfig(t)
		cfg.PerformanceReports = []string{"keywords"}
		runner := NewRunner(cfg, []config.AccountCredentials{{ClientCustomerID: "1"}}, nil, fileRepositoryFactory, nil)

		assert.Error(t, runner.Run(context.Background()))
	})

	t.Run("Falha ao criar o cliente", func(t *testing.T) {
		factoryErr := errors.New("refresh token inválido")
		runner := NewRunner(
			testDownloadConfig(t),
			[]config.AccountCredentials{{ClientCustomerID: "1"}},
			func(config.AccountCredentials) (ReportService, error) { return nil, factoryErr },
			fileRepositoryFactory,
			nil,
		)

		err := runner.Run(context.Background())
		assert.ErrorIs(t, err, factoryErr)
		assert.Contains(t, err.Error(), `"1"`)
	})
}

func TestPerformanceReportsFor(t *testing.T) {
	defs, err := PerformanceReportsFor([]string{"ad", " ", "ACCOUNT_PERFORMANCE_REPORT", "ad"})
	require.NoError(t, err)

	require.Len(t, defs, 2)
	assert.Equal(t, domain.AdPerformanceReport, defs[0].Type)
	assert.Equal(t, domain.AccountPerformanceReport, defs[1].Type)

	_, err = PerformanceReportsFor([]string{"keywords"})
	assert.Error(t, err)
}
