package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/profilescroll/internal/nested"
)

// EnvPrefix prefixes every environment override, e.g. PROFILESCROLL_HEADER_FULL_HEIGHT.
const EnvPrefix = "PROFILESCROLL"

// Config holds application configuration.
type Config struct {
	Header   HeaderConfig
	Scroll   ScrollConfig
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// HeaderConfig sizes the collapsing header in terminal lines.
type HeaderConfig struct {
	FullHeight      float64 `mapstructure:"full_height"`
	CollapsedHeight float64 `mapstructure:"collapsed_height"`
}

// ScrollConfig tunes gesture handling.
type ScrollConfig struct {
	Overscroll float64 `mapstructure:"overscroll"`
	SettleMS   int     `mapstructure:"settle_ms"`
	WheelStep  float64 `mapstructure:"wheel_step"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig controls the log file. The terminal belongs to the UI.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialPage string `mapstructure:"initial_page"`
	Profile     string
}

var (
	// ErrInvalidHeight is returned for a non-positive header height.
	ErrInvalidHeight = errors.New("header heights must be positive")
	// ErrInvalidScroll is returned for out of range scroll tuning values.
	ErrInvalidScroll = errors.New("overscroll must be at least one line and other scroll settings non-negative")
	// ErrWheelStep is returned for a wheel step too small to move the header.
	ErrWheelStep = errors.New("wheel_step must be 0 (default of one line) or at least one line")
)

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "profilescroll")
}

// Path returns the config file location. PROFILESCROLL_CONFIG overrides it.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "profilescroll", "config.toml")
}

// Defaults registers default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("header.full_height", 8)
	v.SetDefault("header.collapsed_height", 2)
	v.SetDefault("scroll.overscroll", 1)
	v.SetDefault("scroll.settle_ms", 150)
	v.SetDefault("scroll.wheel_step", 1)
	v.SetDefault("database.path", filepath.Join(dataDir(), "profilescroll.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "profilescroll.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.initial_page", "")
	v.SetDefault("ui.profile", "")
}

// New returns a viper instance with defaults, config file lookup and env
// overrides applied but not yet read. An empty file falls back to
// PROFILESCROLL_CONFIG and then the default search path.
func New(file string) *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetConfigType("toml")

	if file == "" {
		file = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(filepath.Dir(Path()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	return LoadFrom(New(""))
}

// LoadFrom reads the config file registered on v, if present, and decodes it.
func LoadFrom(v *viper.Viper) (Config, error) {
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
	return c, nil
}

// Validate rejects settings the UI cannot run with. A collapsed height larger
// than the full height is not rejected here; the coordinator clamps it and
// reports it.
func (c Config) Validate() error {
	if c.Header.FullHeight <= 0 || c.Header.CollapsedHeight < 0 {
		return fmt.Errorf("%w: full=%g collapsed=%g", ErrInvalidHeight, c.Header.FullHeight, c.Header.CollapsedHeight)
	}
	// Revealing the header needs a drag past the top of a page.
	if c.Scroll.Overscroll < 1 || c.Scroll.SettleMS < 0 || c.Scroll.WheelStep < 0 {
		return fmt.Errorf("%w: overscroll=%g settle_ms=%d wheel_step=%g",
			ErrInvalidScroll, c.Scroll.Overscroll, c.Scroll.SettleMS, c.Scroll.WheelStep)
	}
	// Each wheel notch is one gesture sample; below the dead zone the header
	// would never move.
	if c.Scroll.WheelStep > 0 && c.Scroll.WheelStep < nested.DeadZone {
		return fmt.Errorf("%w: wheel_step=%g", ErrWheelStep, c.Scroll.WheelStep)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("header.full_height", cfg.Header.FullHeight)
	v.Set("header.collapsed_height", cfg.Header.CollapsedHeight)
	v.Set("scroll.overscroll", cfg.Scroll.Overscroll)
	v.Set("scroll.settle_ms", cfg.Scroll.SettleMS)
	v.Set("scroll.wheel_step", cfg.Scroll.WheelStep)
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.initial_page", cfg.UI.InitialPage)
	v.Set("ui.profile", cfg.UI.Profile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
