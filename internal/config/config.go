package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Storage       string `mapstructure:"storage"`
	DataDir       string `mapstructure:"data_dir"`
	PollInterval  string `mapstructure:"poll_interval"`
	NotifyCommand string `mapstructure:"notify_command"`
	Theme         string `mapstructure:"theme"`
	MaxWidth      int    `mapstructure:"max_width"`
}

// DefaultDataDir returns the default data directory (~/.remindctl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".remindctl")
	}
	return filepath.Join(home, ".remindctl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "sqlite")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("poll_interval", "2s")
	v.SetDefault("notify_command", "notify-send")
	v.SetDefault("theme", "default-dark")
	v.SetDefault("max_width", 0)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "remindctl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: REMINDCTL_STORAGE, REMINDCTL_DATA_DIR, etc.
	v.SetEnvPrefix("REMINDCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Interval parses the configured poll interval, clamped to a 1s floor so a
// typo cannot turn the scanner into a busy loop.
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil || d < time.Second {
		return 2 * time.Second
	}
	return d
}
