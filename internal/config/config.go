// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Session display modes.
const (
	ModeAuto  = "auto"  // TUI when stdout is a terminal, plain otherwise.
	ModeTUI   = "tui"   // Always the Bubble Tea REPL.
	ModePlain = "plain" // Always the line loop.
)

// Config holds all contactbook configuration.
type Config struct {
	UI  UI  `yaml:"ui"`
	Log Log `yaml:"log"`
}

// UI holds interactive session settings.
type UI struct {
	Mode    string `yaml:"mode"`    // "auto" | "tui" | "plain"
	Prompt  string `yaml:"prompt"`  // Text shown before each input line
	Banner  bool   `yaml:"banner"`  // Print the help banner at startup
	Suggest bool   `yaml:"suggest"` // Offer "did you mean" hints
	History int    `yaml:"history"` // Input lines recalled with up/down in the TUI
}

// Log holds debug log settings.
type Log struct {
	Level      string `yaml:"level"`       // "debug" | "info" | "warn" | "error"
	File       string `yaml:"file"`        // Empty disables logging
	MaxSizeMB  int    `yaml:"max_size_mb"` // Rotate after this many megabytes
	MaxBackups int    `yaml:"max_backups"` // Rotated files to keep
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Mode:    ModeAuto,
			Prompt:  "Please, enter the valid command: ",
			Banner:  true,
			Suggest: true,
			History: 50,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeAuto, ModeTUI, ModePlain:
		// valid
	default:
		return fmt.Errorf("config: ui.mode must be %q, %q or %q, got %q", ModeAuto, ModeTUI, ModePlain, c.UI.Mode)
	}
	if c.UI.History < 0 {
		return fmt.Errorf("config: ui.history must be non-negative, got %d", c.UI.History)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("config: log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return errors.New("config: log.max_backups cannot be negative")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTBOOK_UI_MODE, CONTACTBOOK_PROMPT,
// CONTACTBOOK_BANNER, CONTACTBOOK_LOG_LEVEL, CONTACTBOOK_LOG_FILE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTBOOK_UI_MODE"); v != "" {
		c.UI.Mode = v
	}
	if v := os.Getenv("CONTACTBOOK_PROMPT"); v != "" {
		c.UI.Prompt = v
	}
	if v := os.Getenv("CONTACTBOOK_BANNER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTBOOK_BANNER %q: %w", v, err)
		}
		c.UI.Banner = b
	}
	if v := os.Getenv("CONTACTBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CONTACTBOOK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI  *rawUI  `yaml:"ui"`
	Log *rawLog `yaml:"log"`
}

type rawUI struct {
	Mode    *string `yaml:"mode"`
	Prompt  *string `yaml:"prompt"`
	Banner  *bool   `yaml:"banner"`
	Suggest *bool   `yaml:"suggest"`
	History *int    `yaml:"history"`
}

type rawLog struct {
	Level      *string `yaml:"level"`
	File       *string `yaml:"file"`
	MaxSizeMB  *int    `yaml:"max_size_mb"`
	MaxBackups *int    `yaml:"max_backups"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if ui := layer.UI; ui != nil {
		setIf(&c.UI.Mode, ui.Mode)
		setIf(&c.UI.Prompt, ui.Prompt)
		setIf(&c.UI.Banner, ui.Banner)
		setIf(&c.UI.Suggest, ui.Suggest)
		setIf(&c.UI.History, ui.History)
	}
	if lg := layer.Log; lg != nil {
		setIf(&c.Log.Level, lg.Level)
		setIf(&c.Log.File, lg.File)
		setIf(&c.Log.MaxSizeMB, lg.MaxSizeMB)
		setIf(&c.Log.MaxBackups, lg.MaxBackups)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
