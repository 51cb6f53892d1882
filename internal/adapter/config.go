package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmcdole/movielist/internal/domain"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultSort  string `mapstructure:"default_sort"`  // name_asc, name_desc, rating_asc, rating_desc
	Locale       string `mapstructure:"locale"`        // BCP 47 tag used to collate names
	SimilarLimit int    `mapstructure:"similar_limit"` // near-duplicate hints shown in the add form
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultSort:  domain.DefaultSortMode.Key(),
			Locale:       "und",
			SimilarLimit: 3,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "movielist", "movielist.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "movielist", "movielist.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "movielist")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "movielist")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "movielist")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise a missing config.yaml is fine.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	// Defaults make every key visible to AutomaticEnv during Unmarshal
	v.SetDefault("ui.default_sort", cfg.UI.DefaultSort)
	v.SetDefault("ui.locale", cfg.UI.Locale)
	v.SetDefault("ui.similar_limit", cfg.UI.SimilarLimit)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. MOVIELIST_UI_DEFAULT_SORT
	v.SetEnvPrefix("MOVIELIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be expressed by the config types alone
func (c *Config) Validate() error {
	if _, err := c.DefaultSortMode(); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	if _, err := c.LocaleTag(); err != nil {
		return fmt.Errorf("ui.locale: %w", err)
	}
	if c.UI.SimilarLimit < 0 {
		return fmt.Errorf("ui.similar_limit: must not be negative, got %d", c.UI.SimilarLimit)
	}
	return nil
}

// DefaultSortMode returns the configured initial sort mode
func (c *Config) DefaultSortMode() (domain.SortMode, error) {
	return domain.ParseSortMode(c.UI.DefaultSort)
}

// LocaleTag returns the configured collation locale
func (c *Config) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.UI.Locale, err)
	}
	return tag, nil
}
