package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	GoogleAds   GoogleAds   `mapstructure:",squash"`
	SA360       SA360       `mapstructure:",squash"`
	Sheets      Sheets      `mapstructure:",squash"`
	OAuth       OAuth       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	DecisionRun DecisionRun `mapstructure:",squash"`
	RunLease    RunLease    `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`

	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	ConnectAttempts int           `mapstructure:"database_connect_attempts"`
	ConnectBackoff  time.Duration `mapstructure:"database_connect_backoff"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type GoogleAds struct {
	BaseURL         string        `mapstructure:"google_ads_base_url"`
	Version         string        `mapstructure:"google_ads_version"`
	URL             string        `mapstructure:"-"`
	DeveloperToken  string        `mapstructure:"google_ads_developer_token"`
	LoginCustomerID string        `mapstructure:"google_ads_login_customer_id"`
	RequestTimeout  time.Duration `mapstructure:"google_ads_request_timeout"`
}

type SA360 struct {
	BaseURL         string        `mapstructure:"sa360_base_url"`
	Version         string        `mapstructure:"sa360_version"`
	URL             string        `mapstructure:"-"`
	LoginCustomerID string        `mapstructure:"sa360_login_customer_id"`
	RequestTimeout  time.Duration `mapstructure:"sa360_request_timeout"`
}

type Sheets struct {
	Endpoint string `mapstructure:"sheets_endpoint"`
}

// OAuth guarda as credenciais de refresh token por API. Os valores vêm do secret storage
// do ambiente; nada aqui é commitado.
type OAuth struct {
	ClientID          string `mapstructure:"oauth_client_id"`
	ClientSecret      string `mapstructure:"oauth_client_secret"`
	RefreshToken      string `mapstructure:"oauth_refresh_token"`
	SA360RefreshToken string `mapstructure:"oauth_sa360_refresh_token"`
	SheetsRefresh     string `mapstructure:"oauth_sheets_refresh_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	AppName  string `mapstructure:"app_name"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DecisionRun struct {
	CronSchedule         string   `mapstructure:"decision_run_cron"`
	Enabled              bool     `mapstructure:"decision_run_enabled"`
	MaxConcurrentJobs    int      `mapstructure:"decision_run_max_concurrent_jobs"`
	MaxParallelMutations int      `mapstructure:"decision_run_max_parallel_mutations"`
	DefaultDryRun        bool     `mapstructure:"decision_run_default_dry_run"`
	HistoryDefaultLimit  int      `mapstructure:"decision_run_history_default_limit"`
	HistoryMaxLimit      int      `mapstructure:"decision_run_history_max_limit"`
	RequestDelaySeconds  int      `mapstructure:"decision_run_request_delay_seconds"`
	ScheduledUsecases    []string `mapstructure:"decision_run_usecases"`
}

type RunLease struct {
	TTL       time.Duration `mapstructure:"run_lease_ttl"`
	KeyPrefix string        `mapstructure:"run_lease_key_prefix"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("APP_NAME", "decision_agent")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agentic_dsta?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_CONNECT_ATTEMPTS", 5)
	viper.SetDefault("DATABASE_CONNECT_BACKOFF", "2s")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v22")
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("SA360_BASE_URL", "https://searchads360.googleapis.com")
	viper.SetDefault("SA360_VERSION", "v0")
	viper.SetDefault("SA360_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("SHEETS_ENDPOINT", "")

	viper.SetDefault("AUTH_SECRET", "")

	// Defaults para as execuções agendadas
	viper.SetDefault("DECISION_RUN_CRON", "0 6 * * *")            // Todos os dias às 6h da manhã
	viper.SetDefault("DECISION_RUN_ENABLED", false)               // Habilitar execuções agendadas
	viper.SetDefault("DECISION_RUN_MAX_CONCURRENT_JOBS", 3)       // 3 clientes em paralelo
	viper.SetDefault("DECISION_RUN_MAX_PARALLEL_MUTATIONS", 4)    // 4 campanhas em paralelo por cliente
	viper.SetDefault("DECISION_RUN_DEFAULT_DRY_RUN", true)        // Execuções agendadas simuladas por padrão
	viper.SetDefault("DECISION_RUN_HISTORY_DEFAULT_LIMIT", 20)    // Tamanho padrão do histórico
	viper.SetDefault("DECISION_RUN_HISTORY_MAX_LIMIT", 100)       // Limite máximo do histórico
	viper.SetDefault("DECISION_RUN_REQUEST_DELAY_SECONDS", 0)     // Pausa entre clientes
	viper.SetDefault("DECISION_RUN_USECASES", "google_ads,sa360") // Casos de uso agendados

	viper.SetDefault("RUN_LEASE_TTL", "15m")
	viper.SetDefault("RUN_LEASE_KEY_PREFIX", "run-lease")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // somente ambiente local

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)
	config.SA360.URL = fmt.Sprintf("%s/%s", config.SA360.BaseURL, config.SA360.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// cmd/api e infrastructure/migration/script rodam dois níveis abaixo da raiz
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(filepath.Dir(filepath.Dir(cwd)), ".env"),
	}
	if custom := os.Getenv("ENV_FILE"); custom != "" {
		locations = append([]string{custom}, locations...)
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
