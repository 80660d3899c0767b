package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Store configuration
	Store StoreConfig `mapstructure:"store"`

	// Engine configuration
	Engine EngineConfig `mapstructure:"engine"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// StoreConfig holds snapshot store configuration
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // badger or memory
	Path    string `mapstructure:"path"`
}

// EngineConfig holds addressing engine configuration
type EngineConfig struct {
	// DefaultReference is the person id used when a query names no
	// reference and the snapshot carries no UserID.
	DefaultReference string `mapstructure:"default_reference"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Store defaults
	viper.SetDefault("store.backend", "badger")
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetDefault("store.path", filepath.Join(home, ".giapha", "trees"))
	} else {
		viper.SetDefault("store.path", "./giapha_trees")
	}
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	if path := os.Getenv("GIAPHA_STORE_PATH"); path != "" {
		config.Store.Path = path
	}
	if backend := os.Getenv("GIAPHA_STORE_BACKEND"); backend != "" {
		config.Store.Backend = backend
	}
	if level := os.Getenv("GIAPHA_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
}
