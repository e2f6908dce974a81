// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "FINTRACK"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		File       string `mapstructure:"file" yaml:"file"`
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Session struct {
		User     string `mapstructure:"user" yaml:"user"`
		Password string `mapstructure:"password" yaml:"-"` // never serialized
	} `mapstructure:"session" yaml:"session"`
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}

// DataPath returns the storage path for the selected backend.
func (c *Config) DataPath() string {
	if strings.EqualFold(c.Data.Backend, "sqlite") {
		return c.Data.SQLitePath
	}
	return c.Data.File
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load is InitializeConfig with an explicit config file. An empty configFile
// searches the standard locations for fintrack.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("fintrack")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.fintrack")
		v.AddConfigPath(".fintrack")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. Short names for the default credentials
	if err := v.BindEnv("session.user", EnvPrefix+"_SESSION_USER", EnvPrefix+"_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind session user: %w", err)
	}
	if err := v.BindEnv("session.password", EnvPrefix+"_SESSION_PASSWORD", EnvPrefix+"_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind session password: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.backend", "yaml")
	v.SetDefault("data.file", "fintrack.yaml")
	v.SetDefault("data.sqlite_path", "fintrack.db")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("session.user", "")
	v.SetDefault("session.password", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch strings.ToLower(config.Data.Backend) {
	case "yaml":
		if config.Data.File == "" {
			return fmt.Errorf("data.file is required for the yaml backend")
		}
	case "sqlite":
		if config.Data.SQLitePath == "" {
			return fmt.Errorf("data.sqlite_path is required for the sqlite backend")
		}
	case "memory":
	default:
		return fmt.Errorf("invalid data backend: %s (must be 'yaml', 'sqlite' or 'memory')", config.Data.Backend)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
