package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Booking BookingConfig `mapstructure:"booking"`
	Log     LogConfig     `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone   string `mapstructure:"timezone"`
	DateFormat string `mapstructure:"date_format"`
}

// BookingConfig tunes the booking form.
type BookingConfig struct {
	SubmitDelay   time.Duration `mapstructure:"submit_delay"`
	DefaultGuests int           `mapstructure:"default_guests"`
	MaxGuests     int           `mapstructure:"max_guests"`
}

// LogConfig points the file logger somewhere. The terminal belongs to the UI.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix WILDROAM_.
// A .env file in the working directory is applied first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("ui.timezone", "")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("booking.submit_delay", "2s")
	v.SetDefault("booking.default_guests", 2)
	v.SetDefault("booking.max_guests", 8)
	v.SetDefault("log.path", filepath.Join(homeDir(), ".local", "state", "wildroam", "wildroam.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WILDROAM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WILDROAM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot work with.
func (c Config) Validate() error {
	if c.Booking.SubmitDelay < 0 {
		return fmt.Errorf("booking.submit_delay must not be negative, got %s", c.Booking.SubmitDelay)
	}
	if c.Booking.MaxGuests < 1 {
		return fmt.Errorf("booking.max_guests must be at least 1, got %d", c.Booking.MaxGuests)
	}
	if c.Booking.DefaultGuests < 1 || c.Booking.DefaultGuests > c.Booking.MaxGuests {
		return fmt.Errorf("booking.default_guests must be within 1..%d, got %d", c.Booking.MaxGuests, c.Booking.DefaultGuests)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves ui.timezone, falling back to the local zone when unset.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.UI.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ui.timezone: %w", err)
	}
	return loc, nil
}

// Path is where Load looks for the config file.
func Path() string {
	if p := os.Getenv("WILDROAM_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("booking.submit_delay", cfg.Booking.SubmitDelay.String())
	v.Set("booking.default_guests", cfg.Booking.DefaultGuests)
	v.Set("booking.max_guests", cfg.Booking.MaxGuests)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EnsureFile writes cfg to Path when no config file exists yet, so users have
// something to edit. It reports whether a file was created.
func EnsureFile(cfg Config) (bool, error) {
	if _, err := os.Stat(Path()); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wildroam")
	}
	return filepath.Join(homeDir(), ".config", "wildroam")
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}
