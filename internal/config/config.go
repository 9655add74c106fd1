package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Fetch    FetchConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// FetchConfig holds page metadata fetch settings.
type FetchConfig struct {
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	UserAgent   string `mapstructure:"user_agent"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	// ExitFrames is how many ticks a dismissed detail modal lingers.
	// Zero disables the exit transition.
	ExitFrames int `mapstructure:"exit_frames"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix MARGINALIA_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "marginalia")
	v.SetDefault("database.path", filepath.Join(dataDir, "marginalia.db"))
	v.SetDefault("fetch.timeout_secs", 10)
	v.SetDefault("fetch.user_agent", "marginalia/1.0 (+terminal reading list)")
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.exit_frames", 6)
	v.SetDefault("log.path", filepath.Join(dataDir, "marginalia.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MARGINALIA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "marginalia"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MARGINALIA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Fetch.TimeoutSecs <= 0 {
		c.Fetch.TimeoutSecs = 10
	}
	if c.UI.ExitFrames < 0 {
		c.UI.ExitFrames = 0
	}
	return c, nil
}

// Path returns where config is (or would be) written.
func Path() string {
	if p := os.Getenv("MARGINALIA_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "marginalia", "config.toml")
}

// Save writes the provided config to disk, creating the config directory
// if needed. In-app preference changes persist through this.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("fetch.timeout_secs", cfg.Fetch.TimeoutSecs)
	v.Set("fetch.user_agent", cfg.Fetch.UserAgent)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.exit_frames", cfg.UI.ExitFrames)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
