package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Moderation
	Iffy    IffyConfig
	History HistoryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port      int
	Mode      string
	AuthToken string // bearer token required on /api routes; empty disables auth
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type IffyConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// HistoryConfig bounds the in-memory moderation record store.
type HistoryConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AuthToken = viper.GetString("http_server.auth_token")
	if token := viper.GetString("api_auth_token"); token != "" {
		cfg.HTTPServer.AuthToken = token
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Iffy
	cfg.Iffy.APIKey = viper.GetString("iffy.api_key")
	cfg.Iffy.BaseURL = viper.GetString("iffy.base_url")
	cfg.Iffy.Timeout = viper.GetDuration("iffy.timeout")

	// History
	cfg.History.Size = viper.GetInt("history.size")
	cfg.History.TTL = viper.GetDuration("history.ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("iffy.base_url", "https://www.iffy.com/api")
	viper.SetDefault("iffy.timeout", "30s")

	viper.SetDefault("history.size", 1000)
	viper.SetDefault("history.ttl", "24h")
}

func (cfg *Config) validate() error {
	if cfg.Iffy.APIKey == "" {
		return fmt.Errorf("iffy.api_key is required (set IFFY_API_KEY)")
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be one of debug, release, test, got %q", cfg.HTTPServer.Mode)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.History.Size <= 0 {
		return fmt.Errorf("history.size must be positive, got %d", cfg.History.Size)
	}
	if cfg.Iffy.Timeout < 0 {
		return fmt.Errorf("iffy.timeout must not be negative")
	}
	return nil
}
