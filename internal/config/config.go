// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds all application configuration.
// It is instantiated by NewConfig() and passed to components that need it (dependency injection).
type AppConfig struct {
	Log    LogConfig    `mapstructure:"log"`
	Portal PortalConfig `mapstructure:"portal"`
	UI     UIConfig     `mapstructure:"ui"`
	Server ServerConfig `mapstructure:"server"`
}

// LogConfig holds comprehensive logging configuration
type LogConfig struct {
	Level    string            `mapstructure:"level"`
	Format   string            `mapstructure:"format"`
	Output   []LogOutputConfig `mapstructure:"output"`
	Levels   map[string]string `mapstructure:"levels"`
	Context  LogContextConfig  `mapstructure:"context"`
	Sampling LogSamplingConfig `mapstructure:"sampling"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type"` // "file", "console"
	Enabled bool            `mapstructure:"enabled"`
	Path    string          `mapstructure:"path"`   // For file output
	Rotate  LogRotateConfig `mapstructure:"rotate"` // For file output
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// LogContextConfig defines what context to include in logs
type LogContextConfig struct {
	IncludeCaller     bool   `mapstructure:"include_caller"`
	IncludeTimestamp  bool   `mapstructure:"include_timestamp"`
	IncludeStackTrace string `mapstructure:"include_stack_trace"` // Level at which to include stack trace
}

// LogSamplingConfig defines log sampling settings
type LogSamplingConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Initial    uint32        `mapstructure:"initial"`
	Thereafter uint32        `mapstructure:"thereafter"`
	Tick       time.Duration `mapstructure:"tick"`
}

// PortalConfig describes the job portal backend the client talks to.
type PortalConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"` // 0 = no client timeout
	SessionFile string        `mapstructure:"session_file"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	SuccessToast time.Duration `mapstructure:"success_toast"`
	ErrorToast   time.Duration `mapstructure:"error_toast"`
}

// ServerConfig holds configuration for the development portal stub.
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	SeedFile       string        `mapstructure:"seed_file"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"` // Empty = allow all (development)
}

// NewConfig creates a new AppConfig by reading from a file, environment variables,
// and applying defaults.
func NewConfig(configPath string) (*AppConfig, error) {
	// A missing .env is fine; values may come from the real environment.
	_ = godotenv.Load()

	cfg := defaultConfig()

	v := viper.New()

	// Set config file if provided, otherwise search in standard locations
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.careerdesk")
	}

	v.SetEnvPrefix("CAREERDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	// Read the config file. It's okay if it doesn't exist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configPath != "" && os.IsNotExist(err)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.expandPaths()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// bindEnv registers the keys that AutomaticEnv cannot discover on its own because
// they have no entry in a config file.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"log.level",
		"portal.base_url",
		"portal.timeout",
		"portal.session_file",
		"portal.user_agent",
		"ui.success_toast",
		"ui.error_toast",
		"server.host",
		"server.port",
		"server.jwt_secret",
		"server.token_ttl",
		"server.seed_file",
	} {
		_ = v.BindEnv(key)
	}
}

// defaultConfig returns an AppConfig with default values.
func defaultConfig() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{
					Type:    "file",
					Enabled: true,
					Path:    "~/.careerdesk/logs/careerdesk.log",
					Rotate: LogRotateConfig{
						MaxSizeMB:  20,
						MaxBackups: 5,
						MaxAgeDays: 14,
						Compress:   true,
					},
				},
				{
					Type:    "console",
					Enabled: false, // Disabled by default for TUI
				},
			},
			Levels: map[string]string{
				"orchestrator": "INFO",
				"tui":          "WARN",
				"api":          "INFO",
				"session":      "INFO",
				"server":       "INFO",
				"cli":          "WARN",
			},
			Context: LogContextConfig{
				IncludeCaller:     true,
				IncludeTimestamp:  true,
				IncludeStackTrace: "ERROR",
			},
			Sampling: LogSamplingConfig{
				Enabled:    false,
				Initial:    100,
				Thereafter: 100,
				Tick:       time.Second,
			},
		},
		Portal: PortalConfig{
			BaseURL:     "http://localhost:4000",
			Timeout:     0,
			SessionFile: "~/.careerdesk/session.json",
			UserAgent:   "careerdesk/0.1",
		},
		UI: UIConfig{
			SuccessToast: 2 * time.Second,
			ErrorToast:   4 * time.Second,
		},
		Server: ServerConfig{
			Host:      "127.0.0.1",
			Port:      4000,
			JWTSecret: "careerdesk-dev-secret",
			TokenTTL:  24 * time.Hour,
		},
	}
}

// expandPaths expands ~ and environment variables in path configuration values
func (c *AppConfig) expandPaths() {
	c.Portal.SessionFile = expandPath(c.Portal.SessionFile)
	c.Server.SeedFile = expandPath(c.Server.SeedFile)
	for i := range c.Log.Output {
		c.Log.Output[i].Path = expandPath(c.Log.Output[i].Path)
	}
}

// expandPath expands ~ to home directory and environment variables
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}

// validate checks if the configuration is valid.
func (c *AppConfig) validate() error {
	validLogLevels := map[string]bool{
		"TRACE": true, "DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "FATAL": true, "PANIC": true,
	}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	u, err := url.Parse(c.Portal.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid portal.base_url: %q", c.Portal.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("portal.base_url must be http or https, got: %s", u.Scheme)
	}

	if c.Portal.Timeout < 0 {
		return fmt.Errorf("portal.timeout must not be negative: %s", c.Portal.Timeout)
	}
	if c.Portal.SessionFile == "" {
		return errors.New("portal.session_file is required")
	}

	if c.UI.SuccessToast <= 0 || c.UI.ErrorToast <= 0 {
		return errors.New("ui toast durations must be positive")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.JWTSecret == "" {
		return errors.New("server.jwt_secret is required")
	}
	if c.Server.TokenTTL <= 0 {
		return errors.New("server.token_ttl must be positive")
	}

	return nil
}

// Addr returns the listen address of the portal stub.
func (sc *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", sc.Host, sc.Port)
}
