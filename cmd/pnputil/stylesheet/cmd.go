// Package stylesheetcmd implements the `pnputil stylesheet` command.
package stylesheetcmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/stylesheet"
)

// Command implements `pnputil stylesheet`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	in         string
	avoidCache bool
}

// New creates the stylesheet command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "stylesheet <href>",
		Short: "Append a stylesheet link to an HTML document read from --in or stdin",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.in, "in", "", "HTML file to read (default: stdin)")
	f.BoolVar(&c.avoidCache, "avoid-cache", false, "Append a timestamp query to the href")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if c.in != "" {
		f, err := os.Open(c.in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	injected, err := stylesheet.InjectHTML(r, cmd.OutOrStdout(), args[0], c.avoidCache)
	if err != nil {
		return err
	}
	if !injected {
		slog.Warn("stylesheet: document has no <head>, link not added", "href", args[0])
	}
	return nil
}
