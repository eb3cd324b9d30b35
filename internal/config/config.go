// Package config loads algotrace settings from an optional YAML or JSON file
// overlaid by environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/algotrace/internal/runtime"
)

// History drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// DefaultFrontendOrigin is always allowed by CORS.
const DefaultFrontendOrigin = "http://localhost:3000"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" mapstructure:"server"`
	Engine    EngineConfig    `yaml:"engine" json:"engine" mapstructure:"engine"`
	History   HistoryConfig   `yaml:"history" json:"history" mapstructure:"history"`
	Assistant AssistantConfig `yaml:"assistant" json:"assistant" mapstructure:"assistant"`
	Log       LogConfig       `yaml:"log" json:"log" mapstructure:"log"`
}

type ServerConfig struct {
	Host        string   `yaml:"host" json:"host" mapstructure:"host"`
	Port        int      `yaml:"port" json:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins" mapstructure:"cors_origins"`
}

type EngineConfig struct {
	MaxInputSize int `yaml:"max_input_size" json:"max_input_size" mapstructure:"max_input_size"`
}

type HistoryConfig struct {
	Driver      string        `yaml:"driver" json:"driver" mapstructure:"driver"`
	SQLitePath  string        `yaml:"sqlite_path" json:"sqlite_path" mapstructure:"sqlite_path"`
	RedisAddr   string        `yaml:"redis_addr" json:"redis_addr" mapstructure:"redis_addr"`
	RedisPrefix string        `yaml:"redis_prefix" json:"redis_prefix" mapstructure:"redis_prefix"`
	RedisTTL    time.Duration `yaml:"redis_ttl" json:"redis_ttl" mapstructure:"redis_ttl"`

	// RedactPatterns are regular expressions masked in stored assistant exchanges.
	RedactPatterns []string `yaml:"redact_patterns" json:"redact_patterns" mapstructure:"redact_patterns"`
}

type AssistantConfig struct {
	APIKey string `yaml:"api_key" json:"api_key" mapstructure:"api_key"`
	Model  string `yaml:"model" json:"model" mapstructure:"model"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8000,
			CORSOrigins: []string{DefaultFrontendOrigin},
		},
		Engine: EngineConfig{
			MaxInputSize: runtime.DefaultMaxInputSize,
		},
		History: HistoryConfig{
			Driver:     DriverMemory,
			SQLitePath: "algotrace.db",
		},
		Assistant: AssistantConfig{
			Model: "gemini-2.0-flash",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path (if non-empty and present), then applies the environment.
// A missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Validate checks the values that cannot be repaired by defaults.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.History.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	default:
		return fmt.Errorf("unknown history driver %q (want %s, %s or %s)", c.History.Driver, DriverMemory, DriverSQLite, DriverRedis)
	}
	if c.History.Driver == DriverRedis && c.History.RedisAddr == "" {
		return fmt.Errorf("history driver %q requires redis_addr", DriverRedis)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
