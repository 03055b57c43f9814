// Package shared holds the context passed to all CLI commands.
package shared

import (
	"io"

	"github.com/go-ports/pnputil/internal/config"
	"github.com/go-ports/pnputil/internal/logging"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// ConfigPath overrides the config file location.
	// When empty, resolution falls through to PNPUTIL_CONFIG → ~/.config/pnputil/config.yaml.
	ConfigPath string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Config is populated by Init before any subcommand runs.
	Config *config.KitConfig
}

// Init loads the configuration, applies environment overrides and the
// --log-level flag, and installs the logger writing to logOut.
func (c *Context) Init(logOut io.Writer) error {
	path, source := config.ResolvePath(c.ConfigPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	logging.Setup(logOut, cfg.Log.Level).Debug("config loaded", "path", path, "source", source)
	c.Config = cfg
	return nil
}
