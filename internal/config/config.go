// Package config loads the host configuration that feeds the kit its ambient
// inputs: the page context and the default query string.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/pnputil/pkg/query"
	"github.com/go-ports/pnputil/pkg/urlutil"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// PageContextConfig mirrors the two page-context fields the kit understands.
// nil means "not set"; an explicit empty string is kept as set.
type PageContextConfig struct {
	WebAbsoluteURL       *string `yaml:"web_absolute_url"`
	WebServerRelativeURL *string `yaml:"web_server_relative_url"`
}

// LogConfig controls host logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// KitConfig is the root configuration.
type KitConfig struct {
	Page  PageContextConfig `yaml:"page_context"`
	Query string            `yaml:"query"`
	Log   LogConfig         `yaml:"log"`
}

// envOverrides lists the environment variables ApplyEnv honours. Empty
// values leave the file configuration untouched.
type envOverrides struct {
	WebAbsoluteURL       string `env:"PNPUTIL_WEB_ABSOLUTE_URL"`
	WebServerRelativeURL string `env:"PNPUTIL_WEB_SERVER_RELATIVE_URL"`
	Query                string `env:"PNPUTIL_QUERY"`
	LogLevel             string `env:"PNPUTIL_LOG_LEVEL"`
}

// Default returns a KitConfig with no page context and info logging.
func Default() *KitConfig {
	return &KitConfig{
		Log: LogConfig{Level: "info"},
	}
}

// Load reads config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*KitConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}

	if pc, ok := raw["page_context"].(map[string]any); ok {
		if v, ok := pc["web_absolute_url"].(string); ok {
			cfg.Page.WebAbsoluteURL = &v
		}
		if v, ok := pc["web_server_relative_url"].(string); ok {
			cfg.Page.WebServerRelativeURL = &v
		}
	}

	if v, ok := raw["query"].(string); ok {
		cfg.Query = v
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		if v, ok := lg["level"].(string); ok && v != "" {
			cfg.Log.Level = v
		}
	}

	return cfg, nil
}

// ApplyEnv overlays PNPUTIL_* environment variables onto cfg.
func ApplyEnv(cfg *KitConfig) error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("config.ApplyEnv: %w", err)
	}
	if ov.WebAbsoluteURL != "" {
		cfg.Page.WebAbsoluteURL = &ov.WebAbsoluteURL
	}
	if ov.WebServerRelativeURL != "" {
		cfg.Page.WebServerRelativeURL = &ov.WebServerRelativeURL
	}
	if ov.Query != "" {
		cfg.Query = ov.Query
	}
	if ov.LogLevel != "" {
		cfg.Log.Level = ov.LogLevel
	}
	return nil
}

// PageContext converts the configured fields for urlutil. It returns nil
// when neither field is set, meaning no page context is available.
func (c *KitConfig) PageContext() *urlutil.PageContext {
	if c.Page.WebAbsoluteURL == nil && c.Page.WebServerRelativeURL == nil {
		return nil
	}
	return &urlutil.PageContext{
		WebAbsoluteURL:       c.Page.WebAbsoluteURL,
		WebServerRelativeURL: c.Page.WebServerRelativeURL,
	}
}

// Params returns the configured default query string.
func (c *KitConfig) Params() query.Params {
	return query.New(c.Query)
}

// ---------------------------------------------------------------------------
// Config path resolution
// ---------------------------------------------------------------------------

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolvePath returns the config file path and the source of the resolution.
// Priority: flag → PNPUTIL_CONFIG env → ~/.config/pnputil/config.yaml
// source is one of "flag", "env", or "default".
func ResolvePath(flag string) (path, source string) {
	if flag != "" {
		if p, err := normalizePath(flag); err == nil {
			return p, "flag"
		}
	}
	if v := os.Getenv("PNPUTIL_CONFIG"); v != "" {
		if p, err := normalizePath(v); err == nil {
			return p, "env"
		}
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pnputil", "config.yaml"), "default"
}
