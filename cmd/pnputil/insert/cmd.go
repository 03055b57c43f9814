// Package insertcmd implements the `pnputil insert` command.
package insertcmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/strutil"
)

// Command implements `pnputil insert`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the insert command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "insert <target> <index> <fragment>",
		Short: "Insert a fragment into a string before a rune index",
		Args:  cobra.ExactArgs(3),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (*Command) run(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("insert: index %q is not an integer", args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), strutil.InsertAt(args[0], idx, args[2]))
	return nil
}
