package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"memeview/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Endpoint  Endpoint  `yaml:"endpoint" mapstructure:"endpoint"`
	Render    Render    `yaml:"render" mapstructure:"render"`
	UI        UI        `yaml:"ui" mapstructure:"ui"`
	Logging   Logging   `yaml:"logging" mapstructure:"logging"`
	Telemetry Telemetry `yaml:"telemetry" mapstructure:"telemetry"`
	Version   int       `yaml:"version" mapstructure:"version"`

	// Unknown lists top-level keys in the config file that are not recognised
	Unknown []string `yaml:"-" mapstructure:"-"`
}

// Endpoint describes where random items are fetched from
type Endpoint struct {
	URL     string        `yaml:"url" mapstructure:"url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Render controls how media is turned into a terminal picture
type Render struct {
	Width        int `yaml:"width" mapstructure:"width"`
	CornerRadius int `yaml:"corner_radius" mapstructure:"corner_radius"`
}

// UI holds presentation settings for the browser screen
type UI struct {
	Notice time.Duration `yaml:"notice" mapstructure:"notice"`
	Stats  bool          `yaml:"stats" mapstructure:"stats"`
}

// Logging holds logger settings
type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// Telemetry holds optional error reporting settings
type Telemetry struct {
	DSN         string `yaml:"dsn" mapstructure:"dsn"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

var knownKeys = map[string]bool{
	"endpoint":  true,
	"render":    true,
	"ui":        true,
	"logging":   true,
	"telemetry": true,
	"version":   true,
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Endpoint.URL = DefaultEndpointURL
	cfg.Endpoint.Timeout = DefaultTimeout

	cfg.Render.Width = DefaultRenderWidth
	cfg.Render.CornerRadius = DefaultCornerRadius

	cfg.UI.Notice = DefaultNoticeDuration
	cfg.UI.Stats = true

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load reads .env and memeview.yaml from the working directory
func Load() (*Config, error) {
	return LoadFrom(FileName, EnvFileName)
}

// LoadFrom loads the configuration from the given files, both of which are optional
func LoadFrom(path, envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToLoadEnv
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	var unknown []string

	if err == nil {
		unknown, err = unknownKeys(data)
		if err != nil {
			return nil, errors.ErrFailedToParseConfig
		}

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.Unknown = unknown

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every key so env overrides apply without a config file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("endpoint.url", cfg.Endpoint.URL)
	v.SetDefault("endpoint.timeout", cfg.Endpoint.Timeout)
	v.SetDefault("render.width", cfg.Render.Width)
	v.SetDefault("render.corner_radius", cfg.Render.CornerRadius)
	v.SetDefault("ui.notice", cfg.UI.Notice)
	v.SetDefault("ui.stats", cfg.UI.Stats)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("telemetry.dsn", cfg.Telemetry.DSN)
	v.SetDefault("telemetry.environment", cfg.Telemetry.Environment)
}

// unknownKeys walks the yaml document and returns unrecognised top-level keys
func unknownKeys(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, nil
	}

	var unknown []string

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}

	sort.Strings(unknown)

	return unknown, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateEndpoint(); err != nil {
		return err
	}

	if err := c.validateRender(); err != nil {
		return err
	}

	if c.UI.Notice <= 0 {
		return errors.ErrInvalidNoticeTime
	}

	return nil
}

// validateEndpoint validates the fetch endpoint settings
func (c *Config) validateEndpoint() error {
	if strings.TrimSpace(c.Endpoint.URL) == "" {
		return errors.ErrEndpointRequired
	}

	u, err := url.Parse(c.Endpoint.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidEndpoint, c.Endpoint.URL)
	}

	if c.Endpoint.Timeout < 0 {
		return errors.ErrInvalidTimeout
	}

	return nil
}

// validateRender validates picture settings
func (c *Config) validateRender() error {
	if c.Render.Width < MinRenderWidth || c.Render.Width > MaxRenderWidth {
		return errors.ErrInvalidRenderWidth
	}

	if c.Render.CornerRadius < 0 {
		return errors.ErrInvalidCornerRadius
	}

	return nil
}
