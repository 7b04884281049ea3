package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/internal/calendar"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
	User     UserConfig     `mapstructure:"user"`

	// Keybindings replaces the keys of a bound action, keyed by action name.
	Keybindings map[string][]string `mapstructure:"keybindings"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	StartRoute string `mapstructure:"start_route"`
}

// CalendarConfig holds the scheduler form defaults.
type CalendarConfig struct {
	DefaultTime     string `mapstructure:"default_time"`
	DefaultDuration int    `mapstructure:"default_duration"`
	Durations       []int  `mapstructure:"durations"`
	Seed            bool   `mapstructure:"seed"`
}

// LogConfig holds logger settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

type UserConfig struct {
	Name string `mapstructure:"name"`
}

// Flags returns the command-line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to config.toml")
	fs.String("route", "", "route to open at startup (e.g. /calendar)")
	fs.Bool("write-config", false, "write the effective config file and exit")
	return fs
}

func defaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "venturedesk", "config.toml")
}

// Load reads configuration from file, env and flags. Env var overrides use
// prefix VENTUREDESK_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.date_format", "Jan 02, 2006")
	v.SetDefault("ui.start_route", "/")
	v.SetDefault("calendar.default_time", "09:00")
	v.SetDefault("calendar.default_duration", 30)
	v.SetDefault("calendar.durations", []int{15, 30, 45, 60})
	v.SetDefault("calendar.seed", true)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "venturedesk", "venturedesk.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("user.name", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VENTUREDESK_CONFIG")
	writing := false
	if fs != nil {
		writing, _ = fs.GetBool("write-config")
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
		if f := fs.Lookup("route"); f != nil {
			if err := v.BindPFlag("ui.start_route", f); err != nil {
				return Config{}, fmt.Errorf("bind route flag: %w", err)
			}
		}
	}
	explicit := cfgPath != ""
	if explicit {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(defaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VENTUREDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		// An explicit file must exist unless it is about to be written.
		if !missing || (explicit && !writing) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.StartRoute = core.CleanRoute(c.UI.StartRoute)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values the scheduler depends on.
func (c Config) Validate() error {
	if _, err := calendar.ParseClock(c.Calendar.DefaultTime); err != nil {
		return fmt.Errorf("calendar.default_time: %w", err)
	}
	if len(c.Calendar.Durations) == 0 {
		return errors.New("calendar.durations: must not be empty")
	}
	for _, d := range c.Calendar.Durations {
		if d <= 0 {
			return fmt.Errorf("calendar.durations: %d is not a positive number of minutes", d)
		}
	}
	if !slices.Contains(c.Calendar.Durations, c.Calendar.DefaultDuration) {
		return fmt.Errorf("calendar.default_duration: %d is not one of %v", c.Calendar.DefaultDuration, c.Calendar.Durations)
	}
	for action, keys := range c.Keybindings {
		if len(keys) == 0 || slices.Contains(keys, "") {
			return fmt.Errorf("keybindings.%s: keys must be non-empty", action)
		}
	}
	return nil
}

// Draft returns the add-slot form defaults described by the config.
func (c Config) Draft() calendar.Draft {
	d := calendar.DefaultDraft()
	if t, err := calendar.ParseClock(c.Calendar.DefaultTime); err == nil {
		d.Time = t
	}
	if c.Calendar.DefaultDuration > 0 {
		d.Duration = c.Calendar.DefaultDuration
	}
	return d
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("VENTUREDESK_CONFIG")
	if path == "" {
		path = defaultPath()
	}
	return SaveTo(path, cfg)
}

func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.start_route", cfg.UI.StartRoute)
	v.Set("calendar.default_time", cfg.Calendar.DefaultTime)
	v.Set("calendar.default_duration", cfg.Calendar.DefaultDuration)
	v.Set("calendar.durations", cfg.Calendar.Durations)
	v.Set("calendar.seed", cfg.Calendar.Seed)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("user.name", cfg.User.Name)
	if len(cfg.Keybindings) > 0 {
		v.Set("keybindings", cfg.Keybindings)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
