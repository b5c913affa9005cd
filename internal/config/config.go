package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Mapper   MapperConfig   `mapstructure:"mapper"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// AnalyzerConfig holds repository analysis configuration
type AnalyzerConfig struct {
	Workers      int `mapstructure:"workers"`        // parallel file workers
	MaxFileBytes int `mapstructure:"max_file_bytes"` // per-file read cap during indexing
	TreeDepth    int `mapstructure:"tree_depth"`     // directory tree depth bound
}

// MapperConfig holds requirement mapping configuration
type MapperConfig struct {
	Workers         int `mapstructure:"workers"`           // parallel content-scoring workers
	MaxContentBytes int `mapstructure:"max_content_bytes"` // per-file read cap during content scoring
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			Workers:      runtime.NumCPU(),
			MaxFileBytes: 500_000,
			TreeDepth:    3,
		},
		Mapper: MapperConfig{
			Workers:         runtime.NumCPU(),
			MaxContentBytes: 100_000,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// Look for config in default locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".codescout"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variable overrides
	viper.SetEnvPrefix("CODESCOUT")
	viper.AutomaticEnv()

	viper.BindEnv("analyzer.workers", "CODESCOUT_ANALYZER_WORKERS")
	viper.BindEnv("mapper.workers", "CODESCOUT_MAPPER_WORKERS")
	viper.BindEnv("server.host", "CODESCOUT_SERVER_HOST")
	viper.BindEnv("server.port", "CODESCOUT_SERVER_PORT")
	viper.BindEnv("log.level", "CODESCOUT_LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
