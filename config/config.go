package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Form    FormConfig    `yaml:"form"`
	Scratch ScratchConfig `yaml:"scratch"`
	Watch   bool          `yaml:"watch" env:"FAVICONS_WATCH"`
}

type ServerConfig struct {
	Host        string `yaml:"host" env:"FAVICONS_HOST"`
	Port        int    `yaml:"port" env:"FAVICONS_PORT"`
	MaxUploadMB int64  `yaml:"max_upload_mb" env:"FAVICONS_MAX_UPLOAD_MB"`
	AllowOrigin string `yaml:"allow_origin" env:"FAVICONS_ALLOW_ORIGIN"`
}

// FormConfig prefills the upload form. These are UI values only; empty
// submissions still fall back to the generator defaults.
type FormConfig struct {
	Title           string `yaml:"title" env:"FAVICONS_FORM_TITLE"`
	ThemeColor      string `yaml:"theme_color" env:"FAVICONS_FORM_THEME_COLOR"`
	BackgroundColor string `yaml:"background_color" env:"FAVICONS_FORM_BACKGROUND_COLOR"`
	TileColor       string `yaml:"tile_color" env:"FAVICONS_FORM_TILE_COLOR"`
}

// ScratchConfig controls where per-request archives are written before
// download. An empty Dir means os.TempDir().
type ScratchConfig struct {
	Dir string `yaml:"dir" env:"FAVICONS_SCRATCH_DIR"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        7860,
			MaxUploadMB: 32,
			AllowOrigin: "*",
		},
		Form: FormConfig{
			Title:           "Favicon Generator",
			ThemeColor:      "#ffffff",
			BackgroundColor: "#ffffff",
			TileColor:       "#ffffff",
		},
	}
}

// Load reads and parses the configuration file, then applies environment
// overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return finish(cfg)
}

// FromEnv returns the defaults with environment overrides applied
func FromEnv() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Validate checks if configuration fields are usable
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MaxUploadBytes returns the multipart size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}
