package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment keys that override config.yaml. They are also read from
// ~/.prodfinder/.env.
const (
	EnvCatalog   = "PRODFINDER_CATALOG"
	EnvLimit     = "PRODFINDER_LIMIT"
	EnvLogLevel  = "PRODFINDER_LOG_LEVEL"
	EnvLogFormat = "PRODFINDER_LOG_FORMAT"
	EnvOutput    = "PRODFINDER_OUTPUT"
)

const (
	defaultLimit  = 5
	defaultOutput = "table"
	lockTimeout   = 5 * time.Second
)

// Config is the in-memory representation of ~/.prodfinder/config.yaml.
type Config struct {
	// CatalogPath points at a .json or .jsonl catalog. Empty means the
	// bundled catalog.
	CatalogPath string `yaml:"catalog_path,omitempty"`

	// Limit caps the number of results. 0 shows every match.
	Limit        int                 `yaml:"limit"`
	Output       string              `yaml:"output,omitempty"`
	LogLevel     string              `yaml:"log_level,omitempty"`
	LogFormat    string              `yaml:"log_format,omitempty"` // console or json
	Keywords     map[string][]string `yaml:"keywords,omitempty"`
	PremiumWords []string            `yaml:"premium_words,omitempty"`
	BudgetWords  []string            `yaml:"budget_words,omitempty"`
}

// Dir returns the absolute path to ~/.prodfinder/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".prodfinder"), nil
}

// ConfigPath returns the absolute path to ~/.prodfinder/config.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Limit:     defaultLimit,
		Output:    defaultOutput,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Exists reports whether config.yaml is present.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("cannot stat config %s: %w", path, err)
	}
	return true, nil
}

// Load reads ~/.prodfinder/config.yaml, applies environment overrides and
// fills defaults. A missing file is not an error. An explicit limit of 0 is
// kept; only an absent limit falls back to the default.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.CatalogPath, err = ExpandPath(cfg.CatalogPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that yaml cannot.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	switch c.Output {
	case "", "table", "json":
	default:
		return fmt.Errorf("unsupported output %q (want table or json)", c.Output)
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log_format %q (want console or json)", c.LogFormat)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, err := GetConfigValue(EnvCatalog); err != nil {
		return err
	} else if v != "" {
		cfg.CatalogPath = v
	}
	if v, err := GetConfigValue(EnvLimit); err != nil {
		return err
	} else if v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLimit, v, err)
		}
		cfg.Limit = n
	}
	if v, err := GetConfigValue(EnvLogLevel); err != nil {
		return err
	} else if v != "" {
		cfg.LogLevel = v
	}
	if v, err := GetConfigValue(EnvLogFormat); err != nil {
		return err
	} else if v != "" {
		cfg.LogFormat = v
	}
	if v, err := GetConfigValue(EnvOutput); err != nil {
		return err
	} else if v != "" {
		cfg.Output = v
	}
	return nil
}

// Save marshals cfg and writes it to ~/.prodfinder/config.yaml while holding
// the config lock.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	unlock, err := acquireLock(path+".lock", lockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
