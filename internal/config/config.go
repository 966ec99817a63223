package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "20:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue",...]
	Holidays []string `mapstructure:"holidays"` // ["2025-01-26"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
}

type NotificationConfig struct {
	Desktop bool `mapstructure:"desktop"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	Theme         string             `mapstructure:"theme"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Reminder      ReminderConfig     `mapstructure:"reminder"`
	Log           LogConfig          `mapstructure:"log"`
}

func Default() Config {
	return Config{
		Theme: "default",
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath honours XDG_CONFIG_HOME and falls back to ~/.config.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "reflectivei", "config.yaml"), nil
}

// Load reads the config at path, or DefaultPath when path is empty.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("REFLECTIVEI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("notifications.desktop", cfg.Notifications.Desktop)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return cfg, fmt.Errorf("config read %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Reminder.Workdays = normalizeWorkdays(cfg.Reminder.Workdays)
	return cfg, nil
}

// normalizeWorkdays maps "monday", " TUE" etc. to "Mon", "Tue" and drops
// anything that is not a weekday.
func normalizeWorkdays(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		if abbr, ok := WeekdayAbbr(d); ok {
			out = append(out, abbr)
		}
	}
	return out
}

// WeekdayAbbr returns the three-letter title-case abbreviation of a weekday name.
func WeekdayAbbr(name string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(name))
	if len(d) < 3 {
		return "", false
	}
	abbr := strings.ToUpper(d[:1]) + d[1:3]
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String()[:3] == abbr {
			return abbr, true
		}
	}
	return "", false
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
