package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Stream    StreamConfig    `yaml:"stream"`
	CORS      CORSConfig      `yaml:"cors"`
	Marketing MarketingConfig `yaml:"marketing"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host         string        `yaml:"host" env:"HALO_SERVER_HOST"`
	Port         int           `yaml:"port" env:"HALO_SERVER_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HALO_SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HALO_SERVER_WRITE_TIMEOUT"`
}

type StreamConfig struct {
	BroadcastThrottle time.Duration `yaml:"broadcast_throttle" env:"HALO_STREAM_BROADCAST_THROTTLE"`
	SnapshotInterval  time.Duration `yaml:"snapshot_interval" env:"HALO_STREAM_SNAPSHOT_INTERVAL"`
}

type CORSConfig struct {
	// AllowedOrigins lists origins allowed on browser requests. Empty means
	// allow all, matching the original dev posture.
	AllowedOrigins []string `yaml:"allowed_origins" env:"HALO_CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type MarketingConfig struct {
	ProductName string `yaml:"product_name" env:"HALO_MARKETING_PRODUCT_NAME"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"HALO_LOG_LEVEL"` // debug, info, warn, error
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Stream: StreamConfig{
			BroadcastThrottle: 100 * time.Millisecond,
			SnapshotInterval:  5 * time.Second,
		},
		Marketing: MarketingConfig{
			ProductName: "Titan-Core",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration in three layers: built-in defaults, the YAML
// file at path, then HALO_* environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env overrides: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults (still
// honoring environment overrides) when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	cfg = defaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env overrides: %w", err)
	}
	return cfg, nil
}
