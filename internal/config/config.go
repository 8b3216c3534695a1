// Package config loads riskreg settings from a YAML file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/adnsv/riskreg/xl"
)

// Environment variables that override the file.
const (
	EnvOutput    = "RISKREG_OUTPUT"
	EnvSheetName = "RISKREG_SHEET_NAME"
	EnvLogLevel  = "RISKREG_LOG_LEVEL"
)

const DefaultOutput = "risk_register.xlsx"

type Config struct {
	// Output is the workbook path.
	Output string `yaml:"output"`

	SheetName string `yaml:"sheet_name"`

	// HeaderStyle is one of "default", "label" or "band".
	HeaderStyle string `yaml:"header_style"`

	// Columns overrides column widths by header label.
	Columns map[string]float64 `yaml:"columns"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Output:      DefaultOutput,
		SheetName:   xl.DefaultSheetName,
		HeaderStyle: xl.StyleHeaderBand.String(),
		LogLevel:    "info",
	}
}

// Load reads the YAML file at path on top of Default, then applies envFile
// and the process environment. Either path may be empty; a missing envFile
// is not an error.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		// godotenv.Load never overrides variables already set in the environment
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg.applyEnv()

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvSheetName); v != "" {
		c.SheetName = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("config: output path is empty")
	}
	if _, err := c.Style(); err != nil {
		return fmt.Errorf("config: header_style: %w", err)
	}
	for name, w := range c.Columns {
		if w <= 0 {
			return fmt.Errorf("config: column %q: width must be positive", name)
		}
	}
	return nil
}

// Style returns the header style named by HeaderStyle.
func (c Config) Style() (xl.Style, error) {
	return xl.ParseStyle(c.HeaderStyle)
}

// ApplyWidths overrides the widths of t's columns named in c.Columns and
// returns the configured labels that match no header, sorted.
func (c Config) ApplyWidths(t *xl.Table) []string {
	if len(c.Columns) == 0 {
		return nil
	}
	widths := make([]float64, len(t.Header))
	copy(widths, t.Widths)
	matched := map[string]bool{}
	for i, h := range t.Header {
		if w, ok := c.Columns[h]; ok {
			widths[i] = w
			matched[h] = true
		}
	}
	t.Widths = widths

	var unknown []string
	for name := range c.Columns {
		if !matched[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
