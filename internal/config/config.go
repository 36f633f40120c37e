package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
	"github.com/vfg2006/google-ads-downloader/pkg/utils"
)

type Config struct {
	App          App                  `mapstructure:",squash"`
	Server       Server               `mapstructure:",squash"`
	Database     Database             `mapstructure:",squash"`
	GoogleAds    GoogleAds            `mapstructure:",squash"`
	Download     Download             `mapstructure:",squash"`
	DownloadSync DownloadSync         `mapstructure:",squash"`
	Auth         Auth                 `mapstructure:",squash"`
	Accounts     []AccountCredentials `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL           string        `mapstructure:"google_ads_base_url"`
	APIVersion        string        `mapstructure:"google_ads_api_version"`
	OAuth2AuthURL     string        `mapstructure:"google_ads_oauth2_auth_url"`
	OAuth2TokenURL    string        `mapstructure:"google_ads_oauth2_token_url"`
	RequestsPerSecond float64       `mapstructure:"google_ads_requests_per_second"`
	Timeout           time.Duration `mapstructure:"google_ads_timeout"`

	// Lista de conjuntos de credenciais separados por ";" (ver ParseAccounts)
	AccountList string `mapstructure:"google_ads_accounts"`

	// Conjunto único de credenciais, usado quando AccountList está vazio
	ClientCustomerID   string `mapstructure:"google_ads_client_customer_id"`
	DeveloperToken     string `mapstructure:"google_ads_developer_token"`
	OAuth2ClientID     string `mapstructure:"google_ads_oauth2_client_id"`
	OAuth2ClientSecret string `mapstructure:"google_ads_oauth2_client_secret"`
	OAuth2RefreshToken string `mapstructure:"google_ads_oauth2_refresh_token"`
}

// Download contém tudo que o núcleo de download precisa; é passado por valor
type Download struct {
	DataDir                string   `mapstructure:"data_dir"`
	TmpDir                 string   `mapstructure:"tmp_dir"`
	FirstDate              string   `mapstructure:"first_date"`
	RedownloadWindow       int      `mapstructure:"redownload_window"`
	OutputFileVersion      string   `mapstructure:"output_file_version"`
	MaxRetries             int      `mapstructure:"max_retries"`
	RetryBackoffFactor     int      `mapstructure:"retry_backoff_factor"`
	IgnoreRemovedCampaigns bool     `mapstructure:"ignore_removed_campaigns"`
	SourceName             string   `mapstructure:"source_name"`
	PerformanceReports     []string `mapstructure:"performance_reports"`
}

type DownloadSync struct {
	CronSchedule string `mapstructure:"download_sync_cron"`
	Enabled      bool   `mapstructure:"download_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AccountCredentials é um conjunto de credenciais de uma conta gerente (MCC)
type AccountCredentials struct {
	Name               string
	ClientCustomerID   string
	DeveloperToken     string
	OAuth2ClientID     string
	OAuth2ClientSecret string
	OAuth2RefreshToken string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")

	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/google_ads?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("GOOGLE_ADS_BASE_URL", "https://adwords.google.com")
	v.SetDefault("GOOGLE_ADS_API_VERSION", "v201809")
	v.SetDefault("GOOGLE_ADS_OAUTH2_AUTH_URL", "https://accounts.google.com/o/oauth2/auth")
	v.SetDefault("GOOGLE_ADS_OAUTH2_TOKEN_URL", "https://accounts.google.com/o/oauth2/token")
	v.SetDefault("GOOGLE_ADS_REQUESTS_PER_SECOND", 0) // 0 = sem limite
	v.SetDefault("GOOGLE_ADS_TIMEOUT", "10m")
	v.SetDefault("GOOGLE_ADS_ACCOUNTS", "")
	v.SetDefault("GOOGLE_ADS_CLIENT_CUSTOMER_ID", "")
	v.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	v.SetDefault("GOOGLE_ADS_OAUTH2_CLIENT_ID", "")
	v.SetDefault("GOOGLE_ADS_OAUTH2_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_ADS_OAUTH2_REFRESH_TOKEN", "")

	v.SetDefault("DATA_DIR", "/tmp/google-ads")
	v.SetDefault("TMP_DIR", "")               // vazio = diretório temporário do sistema
	v.SetDefault("FIRST_DATE", "2015-01-01")  // primeiro dia baixado
	v.SetDefault("REDOWNLOAD_WINDOW", 30)     // dias sempre baixados novamente
	v.SetDefault("OUTPUT_FILE_VERSION", "v5") // sufixo de versão dos arquivos
	v.SetDefault("MAX_RETRIES", 5)            // tentativas em caso de erro 5xx
	v.SetDefault("RETRY_BACKOFF_FACTOR", 5)   // segundos, multiplicado pela tentativa
	v.SetDefault("IGNORE_REMOVED_CAMPAIGNS", false)
	v.SetDefault("SOURCE_NAME", "google-ads")
	v.SetDefault("PERFORMANCE_REPORTS", "ad")

	v.SetDefault("DOWNLOAD_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	v.SetDefault("DOWNLOAD_SYNC_ENABLED", true)

	v.SetDefault("AUTH_SECRET", "")
}

// NewConfig carrega a configuração sem sobrescritas da linha de comando
func NewConfig() (*Config, error) {
	return Load(nil)
}

// Load monta a configuração a partir dos padrões, do arquivo .env, das variáveis
// de ambiente e, por último, das sobrescritas (chaves no formato das variáveis de ambiente).
func Load(overrides map[string]interface{}) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Accounts, err = config.GoogleAds.credentials()
	if err != nil {
		return nil, err
	}

	if err := config.Download.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// RequireAccounts falha quando nenhum conjunto de credenciais foi configurado
func (c *Config) RequireAccounts() error {
	if len(c.Accounts) == 0 {
		return domain.ErrNoCredentials
	}
	return nil
}

// Validate verifica os valores usados pelo núcleo de download
func (d Download) Validate() error {
	if _, err := d.FirstDateTime(); err != nil {
		return err
	}
	if d.RedownloadWindow < 0 {
		return fmt.Errorf("redownload window must not be negative: %d", d.RedownloadWindow)
	}
	if d.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1: %d", d.MaxRetries)
	}
	if d.RetryBackoffFactor < 0 {
		return fmt.Errorf("retry backoff factor must not be negative: %d", d.RetryBackoffFactor)
	}
	if d.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	return nil
}

// FirstDateTime interpreta FirstDate (formato 2006-01-02)
func (d Download) FirstDateTime() (time.Time, error) {
	if d.FirstDate == "" {
		return time.Time{}, fmt.Errorf("%w: empty", domain.ErrInvalidFirstDate)
	}
	date, err := utils.ParseDate(d.FirstDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidFirstDate, d.FirstDate)
	}
	return *date, nil
}

// RetryBackoff é a pausa base entre tentativas
func (d Download) RetryBackoff() time.Duration {
	return time.Duration(d.RetryBackoffFactor) * time.Second
}

func (g GoogleAds) credentials() ([]AccountCredentials, error) {
	if strings.TrimSpace(g.AccountList) != "" {
		return ParseAccounts(g.AccountList)
	}

	if g.ClientCustomerID == "" {
		return nil, nil
	}

	return []AccountCredentials{{
		ClientCustomerID:   g.ClientCustomerID,
		DeveloperToken:     g.DeveloperToken,
		OAuth2ClientID:     g.OAuth2ClientID,
		OAuth2ClientSecret: g.OAuth2ClientSecret,
		OAuth2RefreshToken: g.OAuth2RefreshToken,
	}}, nil
}

// ParseAccounts interpreta conjuntos de credenciais separados por ";", cada um com
// os campos name,client_customer_id,developer_token,oauth2_client_id,
// oauth2_client_secret,oauth2_refresh_token
func ParseAccounts(list string) ([]AccountCredentials, error) {
	accounts := make([]AccountCredentials, 0)
	for _, entry := range strings.Split(list, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		account, err := ParseAccount(entry)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// ParseAccount interpreta um único conjunto de credenciais separado por vírgulas
func ParseAccount(entry string) (AccountCredentials, error) {
	parts := strings.Split(entry, ",")
	if len(parts) != 6 {
		return AccountCredentials{}, fmt.Errorf("%w: expected 6 comma separated values, got %d",
			domain.ErrInvalidCredentials, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[1] == "" {
		return AccountCredentials{}, fmt.Errorf("%w: client customer id is required", domain.ErrInvalidCredentials)
	}

	return AccountCredentials{
		Name:               parts[0],
		ClientCustomerID:   parts[1],
		DeveloperToken:     parts[2],
		OAuth2ClientID:     parts[3],
		OAuth2ClientSecret: parts[4],
		OAuth2RefreshToken: parts[5],
	}, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
