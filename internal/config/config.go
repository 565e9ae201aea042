package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Client   ClientConfig
	Auth     AuthConfig
	Location LocationConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// ClientConfig — настройки клиента тур-сервиса.
type ClientConfig struct {
	BaseURL         string
	RequestTimeout  time.Duration
	CredentialsFile string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LocationConfig — источник геопозиции для консольного клиента.
// Разрешение и координаты задаются конфигурацией вместо системного диалога.
type LocationConfig struct {
	Granted bool
	Lat     float64
	Lng     float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Client: ClientConfig{
			BaseURL:         viper.GetString("BACKEND_URL"),
			RequestTimeout:  time.Duration(viper.GetInt("REQUEST_TIMEOUT")) * time.Second,
			CredentialsFile: viper.GetString("CREDENTIALS_FILE"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET_KEY"),
			TokenTTL:  time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		},
		Location: LocationConfig{
			Granted: viper.GetBool("LOCATION_GRANTED"),
			Lat:     viper.GetFloat64("LOCATION_LAT"),
			Lng:     viper.GetFloat64("LOCATION_LNG"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = 15 * time.Second
	}
	if cfg.Client.CredentialsFile == "" {
		cfg.Client.CredentialsFile = ".tourguide/credentials.json"
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret-change-in-production"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 30 * 24 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
