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
	Redis           Redis           `mapstructure:",squash"`
	OpenWeather     OpenWeather     `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	PriceUpdateSync PriceUpdateSync `mapstructure:",squash"`
	DemandTracking  DemandTracking  `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

type Redis struct {
	URL             string `mapstructure:"redis_url"`
	PriceCacheTTL   int    `mapstructure:"redis_price_cache_ttl_seconds"`
	PriceCacheOn    bool   `mapstructure:"redis_price_cache_enabled"`
	ConnectRequired bool   `mapstructure:"redis_connect_required"`
}

type OpenWeather struct {
	URL       string  `mapstructure:"openweather_url"`
	APIKey    string  `mapstructure:"openweather_api_key"`
	Latitude  float64 `mapstructure:"openweather_latitude"`
	Longitude float64 `mapstructure:"openweather_longitude"`
	Enabled   bool    `mapstructure:"openweather_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type PriceUpdateSync struct {
	CronSchedule      string `mapstructure:"price_update_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"price_update_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"price_update_sync_enabled"`
}

type DemandTracking struct {
	TimeoutSeconds int `mapstructure:"demand_tracking_timeout_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/menu_pricing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_PRICE_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("REDIS_PRICE_CACHE_ENABLED", true)
	viper.SetDefault("REDIS_CONNECT_REQUIRED", false)

	viper.SetDefault("OPENWEATHER_URL", "https://api.openweathermap.org/data/3.0")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_LATITUDE", -27.5954)
	viper.SetDefault("OPENWEATHER_LONGITUDE", -48.548)
	viper.SetDefault("OPENWEATHER_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults da varredura de atualização de preços
	viper.SetDefault("PRICE_UPDATE_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("PRICE_UPDATE_SYNC_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("PRICE_UPDATE_SYNC_ENABLED", false)

	// Tempo máximo de uma gravação de métrica de demanda disparada por uma
	// rota pública
	viper.SetDefault("DEMAND_TRACKING_TIMEOUT_SECONDS", 3)

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
