// Package guidcmd implements the `pnputil guid` command.
package guidcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/ident"
)

// Command implements `pnputil guid`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	count int
}

// New creates the guid command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "guid",
		Short: "Print v4-shaped GUIDs (not for secrets)",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().IntVarP(&c.count, "count", "n", 1, "Number of GUIDs to print")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	if c.count < 1 {
		return fmt.Errorf("guid: --count must be at least 1, got %d", c.count)
	}
	out := cmd.OutOrStdout()
	for i := 0; i < c.count; i++ {
		fmt.Fprintln(out, ident.GUID())
	}
	return nil
}
