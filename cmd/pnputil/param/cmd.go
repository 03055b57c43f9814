// Package paramcmd implements the `pnputil param` command.
package paramcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/query"
)

// Command implements `pnputil param`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	query  string
	asBool bool
	exists bool
}

// New creates the param command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "param <name>",
		Short: "Read a query-string parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.query, "query", "", "Query string to read (default: configured query)")
	f.BoolVar(&c.asBool, "bool", false, "Print the value interpreted as a boolean")
	f.BoolVar(&c.exists, "exists", false, "Print whether the parameter is present")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	if c.asBool && c.exists {
		return errors.New("param: --bool and --exists are mutually exclusive")
	}

	params := c.ctx.Config.Params()
	if cmd.Flags().Changed("query") {
		params = query.New(c.query)
	}

	name := args[0]
	out := cmd.OutOrStdout()
	switch {
	case c.exists:
		fmt.Fprintln(out, params.Exists(name))
	case c.asBool:
		fmt.Fprintln(out, params.Bool(name))
	default:
		fmt.Fprintln(out, params.Get(name))
	}
	return nil
}
