// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Overpass OverpassConfig `yaml:"overpass" mapstructure:"overpass"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Sheet    SheetConfig    `yaml:"sheet" mapstructure:"sheet"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// OverpassConfig configures the geodata source.
type OverpassConfig struct {
	URL         string `yaml:"url" mapstructure:"url"`
	Country     string `yaml:"country" mapstructure:"country"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// CacheConfig configures the local payload cache.
type CacheConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// SheetConfig configures spreadsheet column discovery.
type SheetConfig struct {
	PLZColumn string `yaml:"plz_column" mapstructure:"plz_column"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PLZGEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("overpass.url", "http://overpass-api.de/api/interpreter")
	v.SetDefault("overpass.country", "AT")
	v.SetDefault("overpass.timeout_secs", 180)
	v.SetDefault("overpass.user_agent", "plzgeo/1.0")
	v.SetDefault("cache.path", "plz.json")
	v.SetDefault("sheet.plz_column", "PLZ")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for values no run can work with.
func (c *Config) Validate() error {
	var problems []string

	if c.Overpass.URL == "" {
		problems = append(problems, "overpass.url is required")
	}
	if len(c.Overpass.Country) != 2 {
		problems = append(problems, "overpass.country must be a 2-letter ISO3166-1 code")
	}
	if c.Overpass.TimeoutSecs <= 0 {
		problems = append(problems, "overpass.timeout_secs must be > 0")
	}
	if c.Cache.Path == "" {
		problems = append(problems, "cache.path is required")
	}
	if c.Sheet.PLZColumn == "" {
		problems = append(problems, "sheet.plz_column is required")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
