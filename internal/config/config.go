// Package config loads application settings from defaults, an optional
// config file, a .env file and TRACKPLOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "TRACKPLOT"

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BasemapConfig struct {
	Dir string `mapstructure:"dir"`
}

type PlotConfig struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	OutputName string  `mapstructure:"output_name"`
	TickStep   float64 `mapstructure:"tick_step"`
	DotSize    float64 `mapstructure:"dot_size"`
}

type ReportConfig struct {
	ShowDateRange bool `mapstructure:"show_date_range"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

type Configuration struct {
	Log     LogConfig     `mapstructure:"log"`
	Basemap BasemapConfig `mapstructure:"basemap"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Report  ReportConfig  `mapstructure:"report"`
	Window  WindowConfig  `mapstructure:"window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("basemap.dir", "")
	v.SetDefault("plot.width", 1200)
	v.SetDefault("plot.height", 1000)
	v.SetDefault("plot.output_name", "track_visualization.png")
	v.SetDefault("plot.tick_step", 2.0)
	v.SetDefault("plot.dot_size", 2.5)
	v.SetDefault("report.show_date_range", false)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
}

// Default returns the built-in configuration without touching the
// filesystem or environment.
func Default() *Configuration {
	v := viper.New()
	setDefaults(v)
	cfg := &Configuration{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load resolves the configuration. file may be empty, in which case
// trackplot.yaml is looked up in the working directory and the user config
// dir; a missing file is not an error.
func Load(file string) (*Configuration, error) {
	// .env is optional, same as the environment itself
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// LOG_LEVEL without prefix is honoured for parity with other tools
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("trackplot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/trackplot")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside rendering
func (c *Configuration) Validate() error {
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	if c.Plot.TickStep <= 0 {
		return fmt.Errorf("plot tick_step must be positive, got %v", c.Plot.TickStep)
	}
	if c.Plot.OutputName == "" || strings.ContainsAny(c.Plot.OutputName, `/\`) {
		return fmt.Errorf("plot output_name must be a bare file name, got %q", c.Plot.OutputName)
	}
	return nil
}
