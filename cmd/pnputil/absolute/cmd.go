// Package absolutecmd implements the `pnputil absolute` command.
package absolutecmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/urlutil"
)

// Command implements `pnputil absolute`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	webAbsoluteURL       string
	webServerRelativeURL string
	pageContextFile      string
}

// New creates the absolute command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "absolute <url>",
		Short: "Resolve a relative URL against the page context",
		Long: "Resolve a relative URL against the page context.\n\n" +
			"The context comes from, in order of precedence: --page-context (a JSON\n" +
			"object with webAbsoluteUrl / webServerRelativeUrl), the base URL flags,\n" +
			"then the page_context section of the config file.",
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.webAbsoluteURL, "web-absolute-url", "", "Absolute base URL of the web")
	f.StringVar(&c.webServerRelativeURL, "web-server-relative-url", "", "Server-relative base URL of the web")
	f.StringVar(&c.pageContextFile, "page-context", "", "Path to a JSON page-context object")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	pc, err := c.pageContext(cmd)
	if err != nil {
		return err
	}
	out, applied := urlutil.Resolve(args[0], pc)
	if !applied && !urlutil.IsAbsolute(args[0]) {
		slog.Warn("absolute: no page context base available, url left relative", "url", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (c *Command) pageContext(cmd *cobra.Command) (*urlutil.PageContext, error) {
	if c.pageContextFile != "" {
		data, err := os.ReadFile(c.pageContextFile)
		if err != nil {
			return nil, fmt.Errorf("absolute: %w", err)
		}
		return urlutil.ParsePageContext(data)
	}

	pc := c.ctx.Config.PageContext()
	flags := cmd.Flags()
	if !flags.Changed("web-absolute-url") && !flags.Changed("web-server-relative-url") {
		return pc, nil
	}
	if pc == nil {
		pc = &urlutil.PageContext{}
	}
	if flags.Changed("web-absolute-url") {
		pc.WebAbsoluteURL = &c.webAbsoluteURL
	}
	if flags.Changed("web-server-relative-url") {
		pc.WebServerRelativeURL = &c.webServerRelativeURL
	}
	return pc, nil
}
