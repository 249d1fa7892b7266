package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Hotmart         Hotmart         `mapstructure:",squash"`
	TMB             TMB             `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	DashboardWarmup DashboardWarmup `mapstructure:",squash"`
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
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Hotmart struct {
	URL         string `mapstructure:"hotmart_url"`
	AccessToken string `mapstructure:"hotmart_access_token"`
}

type TMB struct {
	URL         string `mapstructure:"tmb_url"`
	AccessToken string `mapstructure:"tmb_access_token"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	BusinessID  string `mapstructure:"meta_business_id"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dashboard concentra as regras de negócio configuráveis do painel:
// fuso usado na projeção de baldes de calendário, marcadores de nome de
// conta de anúncio por categoria e TTL do cache de boletos.
type Dashboard struct {
	Timezone                 string `mapstructure:"dashboard_timezone"`
	IAAccountMarker          string `mapstructure:"dashboard_ia_account_marker"`
	ProgrammingAccountMarker string `mapstructure:"dashboard_programming_account_marker"`
	BoletoCacheTTLSeconds    int    `mapstructure:"dashboard_boleto_cache_ttl_seconds"`
}

type DashboardWarmup struct {
	CronSchedule string `mapstructure:"dashboard_warmup_cron"`
	Enabled      bool   `mapstructure:"dashboard_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("HOTMART_URL", "https://developers.hotmart.com/payments/api/v1")
	viper.SetDefault("HOTMART_ACCESS_TOKEN", "your_access_token")

	viper.SetDefault("TMB_URL", "https://api.tmb.com.br/v1")
	viper.SetDefault("TMB_ACCESS_TOKEN", "your_access_token")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_BUSINESS_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Regras do painel
	viper.SetDefault("DASHBOARD_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("DASHBOARD_IA_ACCOUNT_MARKER", "GESTOR DE IA")
	viper.SetDefault("DASHBOARD_PROGRAMMING_ACCOUNT_MARKER", "DEVCLUB")
	viper.SetDefault("DASHBOARD_BOLETO_CACHE_TTL_SECONDS", 300) // 5 minutos

	// Aquecimento do cache do dia corrente
	viper.SetDefault("DASHBOARD_WARMUP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DASHBOARD_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
