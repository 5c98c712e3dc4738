package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Scenarios      Scenarios      `mapstructure:",squash"`
	ScenarioReload ScenarioReload `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	Metrics        Metrics        `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth configura os usuários da API. Cada item de Users tem o formato email|role|bcrypt-hash.
type Auth struct {
	Enabled  bool          `mapstructure:"auth_enabled"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
	Users    []string      `mapstructure:"auth_users"`
}

type Scenarios struct {
	File string `mapstructure:"scenarios_file"`
}

type ScenarioReload struct {
	CronSchedule string `mapstructure:"scenario_reload_cron"`
	Enabled      bool   `mapstructure:"scenario_reload_enabled"`
}

type Report struct {
	DefaultLanguage string `mapstructure:"report_default_language"`
	DefaultCurrency string `mapstructure:"report_default_currency"`
	DefaultCompany  string `mapstructure:"report_default_company"`
}

type Metrics struct {
	Namespace string `mapstructure:"metrics_namespace"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_USERS", "")

	viper.SetDefault("SCENARIOS_FILE", "") // Sem arquivo, apenas o cenário base

	viper.SetDefault("SCENARIO_RELOAD_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SCENARIO_RELOAD_ENABLED", false)

	viper.SetDefault("REPORT_DEFAULT_LANGUAGE", "en")
	viper.SetDefault("REPORT_DEFAULT_CURRENCY", "EUR")
	viper.SetDefault("REPORT_DEFAULT_COMPANY", "My Company")

	viper.SetDefault("METRICS_NAMESPACE", "cfo_playbook")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() {
	c.Auth.Users = trimAll(c.Auth.Users)
	c.Server.AllowedOrigins = trimAll(c.Server.AllowedOrigins)

	c.Report.DefaultLanguage = strings.ToLower(c.Report.DefaultLanguage)
	c.Report.DefaultCurrency = strings.ToUpper(c.Report.DefaultCurrency)

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
}

// trimAll remove espaços e itens vazios das listas separadas por vírgula
func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	if c.Auth.Enabled && c.SecretKey == "" {
		return errors.New("config: SECRET_KEY is required when AUTH_ENABLED is true")
	}

	if c.ScenarioReload.Enabled && c.Scenarios.File == "" {
		return errors.New("config: SCENARIO_RELOAD_ENABLED requires SCENARIOS_FILE")
	}

	switch c.Report.DefaultLanguage {
	case "en", "it":
	default:
		return errors.Errorf("config: unsupported REPORT_DEFAULT_LANGUAGE %q", c.Report.DefaultLanguage)
	}

	switch c.Report.DefaultCurrency {
	case "EUR", "USD", "GBP":
	default:
		return errors.Errorf("config: unsupported REPORT_DEFAULT_CURRENCY %q", c.Report.DefaultCurrency)
	}

	return nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
