package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the nmeadump configuration file. Command line flags
// override any value set here.
type Config struct {
	// Source is a file path, tcp://host:port or udp://:port.
	Source string `yaml:"source"`

	// Format is json or msgpack.
	Format string `yaml:"format"`

	// Dedup drops sentences already seen recently, for feeds combining
	// several receivers.
	Dedup bool `yaml:"dedup"`

	// SilenceTimeout is how long a TCP source may stay quiet before the
	// connection is redialed.
	SilenceTimeout time.Duration `yaml:"silence_timeout"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the structured log output. With an empty File
// everything goes to stderr.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Level      string `yaml:"level"`
}

func defaultConfig() *Config {
	return &Config{
		Format:         "json",
		SilenceTimeout: 5 * time.Minute,
		Log: LogConfig{
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 28,
			Level:      "info",
		},
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "json", "msgpack":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Source == "" {
		return fmt.Errorf("no source given")
	}
	return nil
}
