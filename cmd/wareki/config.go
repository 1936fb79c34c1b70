package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	wareki "github.com/rabitt1ove/jp-wareki"
)

// Supported input encodings.
const (
	encodingUTF8     = "utf-8"
	encodingShiftJIS = "shift_jis"
)

// Config is the optional YAML configuration file.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Encoding string      `yaml:"encoding"`
	Strict   bool        `yaml:"strict"`
	Eras     []EraConfig `yaml:"eras"`
}

// EraConfig is one entry of a custom era table, newest first.
type EraConfig struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Short string `yaml:"short"`
	Code  string `yaml:"code"`
	Start string `yaml:"start"` // YYYY-MM-DD
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Encoding: encodingUTF8,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration, including the era table if present.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := normalizeEncoding(c.Encoding); err != nil {
		return err
	}
	if _, err := c.Converter(); err != nil {
		return err
	}
	return nil
}

// Converter builds a converter from the configured era table, or the
// built-in table when none is configured.
func (c *Config) Converter() (*wareki.Converter, error) {
	if len(c.Eras) == 0 {
		return wareki.New()
	}

	defs := make([]wareki.EraDefinition, 0, len(c.Eras))
	for i, e := range c.Eras {
		start, err := time.Parse(time.DateOnly, e.Start)
		if err != nil {
			return nil, fmt.Errorf("eras[%d] (%s): invalid start %q: %w", i, e.Name, e.Start, err)
		}
		defs = append(defs, wareki.EraDefinition{
			Era:   wareki.Era(e.ID),
			Name:  e.Name,
			Short: e.Short,
			Code:  e.Code,
			Start: wareki.GregorianDate{Year: start.Year(), Month: start.Month(), Day: start.Day()},
		})
	}

	conv, err := wareki.New(defs...)
	if err != nil {
		return nil, fmt.Errorf("eras: %w", err)
	}
	return conv, nil
}

func normalizeEncoding(enc string) (string, error) {
	switch strings.ToLower(strings.ReplaceAll(enc, "-", "_")) {
	case "", "utf_8", "utf8":
		return encodingUTF8, nil
	case "shift_jis", "sjis", "cp932":
		return encodingShiftJIS, nil
	}
	return "", fmt.Errorf("unsupported encoding %q (expected %s or %s)", enc, encodingUTF8, encodingShiftJIS)
}
