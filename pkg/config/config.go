// Package config loads calprint settings from .calprint.yaml and CALPRINT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/calprint/pkg/calendar"
)

const (
	envPrefix  = "CALPRINT"
	configName = ".calprint" // .yaml is implicit
	pathEnv    = "CALPRINT_CONFIG_PATH"
)

// Config is the loaded configuration.
type Config struct {
	Path     string           `json:"path" yaml:"path"`
	Calendar calendar.Options `json:"calendar" yaml:"calendar"`
	// File is the config file that was read, empty when running on defaults.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// BasePath is the directory notes are stored in.
func (c *Config) BasePath() string {
	return c.Path
}

// Load reads the config from the default search path.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	if override := os.Getenv(pathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return load(v)
}

// LoadFile reads the config from an explicit file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}

	ws, err := calendar.ParseWeekStart(v.GetString("week_start"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	c := &Config{
		Path: path,
		Calendar: calendar.Options{
			WeekStart:      ws,
			HoursStart:     v.GetInt("hours_start"),
			HoursEnd:       v.GetInt("hours_end"),
			YearRangeStart: v.GetInt("year_range_start"),
			YearRangeEnd:   v.GetInt("year_range_end"),
		},
		File: v.ConfigFileUsed(),
	}
	if err := c.Calendar.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	d := calendar.DefaultOptions()
	v.SetDefault("path", "~/.calprint")
	v.SetDefault("week_start", d.WeekStart.String())
	v.SetDefault("hours_start", d.HoursStart)
	v.SetDefault("hours_end", d.HoursEnd)
	v.SetDefault("year_range_start", d.YearRangeStart)
	v.SetDefault("year_range_end", d.YearRangeEnd)
}
