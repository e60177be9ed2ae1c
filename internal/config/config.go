package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// Config is the full runtime configuration of the desk tool.
type Config struct {
	DataDir               string        `mapstructure:"data_dir"`
	Currency              string        `mapstructure:"currency"`
	DefaultHourlyPrice    float64       `mapstructure:"default_hourly_price"`
	DefaultSessionMinutes float64       `mapstructure:"default_session_minutes"`
	SweepInterval         time.Duration `mapstructure:"sweep_interval"`
	LogLevel              string        `mapstructure:"log_level"`
}

// Load reads embedded defaults, merges the user YAML (explicit path, or
// ~/.lounge/config.yaml when present), and applies env overrides
// (LOUNGE_*).
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".lounge", "config.yaml")
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		_ = v.MergeInConfig()
	}

	// env override (LOUNGE_*)
	v.SetEnvPrefix("LOUNGE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Second
	}
	return cfg, nil
}

// ResolveDataDir returns the directory holding the database and log
// file, defaulting to ~/.lounge.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lounge"), nil
}
