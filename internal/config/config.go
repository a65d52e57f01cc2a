// Package config loads and validates runtime configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Settings SettingsConfig `mapstructure:"settings"`
}

type ServerConfig struct {
	Addr            string `mapstructure:"addr" validate:"required"`
	CORSAllowOrigin string `mapstructure:"cors_allow_origin"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"min=1,max=65535"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database" validate:"required"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

// SettingsConfig points the scheduler at the user-settings service. When
// RemoteURL is empty, pacing preferences are read from the local database.
type SettingsConfig struct {
	RemoteURL     string `mapstructure:"remote_url" validate:"omitempty,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/quizkeep")
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_allow_origin", "http://localhost:3000")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "quizkeep")
	v.SetDefault("database.database", "quizkeep")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("settings.retry_attempts", 2)

	// Secrets and deployment-specific endpoints come from the
	// environment only, never from the config file.
	if err := v.BindEnv("database.password", "QUIZKEEP_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZKEEP_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("settings.remote_url", "QUIZKEEP_SETTINGS_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZKEEP_SETTINGS_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
