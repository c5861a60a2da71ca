package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// EnvAPIURL overrides api_base_url when set.
const EnvAPIURL = "SCOUT_API_URL"

const (
	ViewCards = "cards"
	ViewTable = "table"
)

type Config struct {
	APIBaseURL  string   `yaml:"api_base_url"`
	Competitors []string `yaml:"competitors"`
	DefaultView string   `yaml:"default_view,omitempty"`
	ExportFile  string   `yaml:"export_file,omitempty"`
}

// BaseURL returns the API base URL, with the environment taking precedence
// over the config file.
func (c *Config) BaseURL() string {
	if v := os.Getenv(EnvAPIURL); v != "" {
		return v
	}
	return c.APIBaseURL
}

// View returns the initial view mode, defaulting to cards.
func (c *Config) View() string {
	if c.DefaultView == "" {
		return ViewCards
	}
	return c.DefaultView
}

// ExportFilename returns the CSV export target, defaulting when unset.
func (c *Config) ExportFilename() string {
	if c.ExportFile == "" {
		return "competitive_briefings.csv"
	}
	return c.ExportFile
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "scout", "config.yaml")
}

func SnapshotPath() string {
	return filepath.Join(xdg.CacheHome, "scout", "briefings.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file, writing the embedded defaults on first run.
// A .env next to the working directory is honored for SCOUT_API_URL, the
// same way the original deployment used dotenv.
func Load(path string) (*Config, error) {
	godotenv.Load()

	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	base := cfg.BaseURL()
	if base == "" {
		return fmt.Errorf("api_base_url is required (or set %s)", EnvAPIURL)
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid api_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url scheme must be http or https, got %q", u.Scheme)
	}
	for i, c := range cfg.Competitors {
		if c == "" {
			return fmt.Errorf("competitor %d: name is required", i)
		}
	}
	switch cfg.DefaultView {
	case "", ViewCards, ViewTable:
	default:
		return fmt.Errorf("unknown default_view %q (valid: %s, %s)", cfg.DefaultView, ViewCards, ViewTable)
	}
	return nil
}
