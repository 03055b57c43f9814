// Package combinecmd implements the `pnputil combine` command.
package combinecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/urlutil"
)

// Command implements `pnputil combine`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the combine command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "combine [segment...]",
		Short: "Join path segments with normalized slashes",
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (*Command) run(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), urlutil.CombinePaths(args...))
	return nil
}
