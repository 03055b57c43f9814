// Package configcmd implements the `pnputil config` command group.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/internal/config"
)

const configTemplate = `# pnputil configuration

# Ambient page context used to resolve relative URLs.
# Either field may be omitted; the absolute URL wins when both are set.
page_context:
  # web_absolute_url: https://contoso.example/sites/dev
  # web_server_relative_url: /sites/dev

# Default query string read by "pnputil param" and the kit_query_param tool.
query: ""

log:
  level: info                   # debug | info | warn | error
`

// Command implements `pnputil config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(newConfigInit(ctx))
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	path, source := config.ResolvePath(c.ctx.ConfigPath)
	cfg := c.ctx.Config
	data := map[string]any{
		"page_context": map[string]any{
			"web_absolute_url":        deref(cfg.Page.WebAbsoluteURL),
			"web_server_relative_url": deref(cfg.Page.WebServerRelativeURL),
		},
		"query":         cfg.Query,
		"log":           map[string]any{"level": cfg.Log.Level},
		"config_path":   path,
		"config_source": source,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(ctx *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter config.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := config.ResolvePath(ctx.ConfigPath)
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s\n", cfgPath)
				fmt.Fprintln(out, "Use --force to overwrite.")
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, []byte(configTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", cfgPath)
			fmt.Fprintln(out, "Edit the file to set your page context.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	return cmd
}

// deref returns nil for an unset field so YAML shows "null" rather than "".
func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
