// Package config loads quizdoc settings from a YAML file and command-line
// flags. Environment variables are never consulted.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/quizdoc/submit"
)

// Name is the base name of the configuration file.
const Name = "quizdoc"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the effective settings of a run.
type Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxRetries      int           `mapstructure:"max_retries"`
	UserAgent       string        `mapstructure:"user_agent"`
	Output          Output        `mapstructure:"output"`
	NumberingLabels bool          `mapstructure:"numbering_labels"`
	OCRLanguage     string        `mapstructure:"ocr_language"`
}

// Output controls how questions are written.
type Output struct {
	Format string `mapstructure:"format"`
	Indent bool   `mapstructure:"indent"`
}

// New returns a viper instance with quizdoc defaults and search paths:
// ./quizdoc.yaml, then ~/.config/quizdoc/quizdoc.yaml.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", Name))
	}

	v.SetDefault("timeout", submit.DefaultTimeout)
	v.SetDefault("max_retries", submit.DefaultMaxRetries)
	v.SetDefault("user_agent", submit.DefaultUserAgent)
	v.SetDefault("output.format", FormatJSON)
	v.SetDefault("output.indent", true)
	v.SetDefault("numbering_labels", false)
	return v
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"endpoint":         "endpoint",
	"timeout":          "timeout",
	"max-retries":      "max_retries",
	"user-agent":       "user_agent",
	"format":           "output.format",
	"indent":           "output.indent",
	"numbering-labels": "numbering_labels",
	"ocr-lang":         "ocr_language",
}

// BindFlags binds the flags of fs that have a configuration key. A flag
// overrides the file only when it was set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the configuration file and returns the effective settings.
// With an explicit path the file must exist; otherwise a missing file on
// the search path is not an error. The second result is the file used,
// empty when none was read.
func Load(v *viper.Viper, path string) (*Config, string, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatJSON, FormatYAML, c.Output.Format)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", c.MaxRetries)
	}
	return nil
}

// Submit returns the settings for a submit.Client.
func (c *Config) Submit() submit.Config {
	return submit.Config{
		Endpoint:   c.Endpoint,
		Timeout:    c.Timeout,
		MaxRetries: c.MaxRetries,
		UserAgent:  c.UserAgent,
	}
}

// fileView is the on-disk layout written by WriteYAML.
type fileView struct {
	Endpoint        string     `yaml:"endpoint"`
	Timeout         string     `yaml:"timeout"`
	MaxRetries      int        `yaml:"max_retries"`
	UserAgent       string     `yaml:"user_agent"`
	Output          outputView `yaml:"output"`
	NumberingLabels bool       `yaml:"numbering_labels"`
	OCRLanguage     string     `yaml:"ocr_language,omitempty"`
}

type outputView struct {
	Format string `yaml:"format"`
	Indent bool   `yaml:"indent"`
}

// WriteYAML writes c in the configuration file layout, so the output can
// be saved as quizdoc.yaml and loaded back.
func (c *Config) WriteYAML(w io.Writer) error {
	view := fileView{
		Endpoint:        c.Endpoint,
		Timeout:         c.Timeout.String(),
		MaxRetries:      c.MaxRetries,
		UserAgent:       c.UserAgent,
		Output:          outputView{Format: c.Output.Format, Indent: c.Output.Indent},
		NumberingLabels: c.NumberingLabels,
		OCRLanguage:     c.OCRLanguage,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
