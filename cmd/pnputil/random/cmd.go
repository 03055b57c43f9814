// Package randomcmd implements the `pnputil random` command.
package randomcmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/ident"
)

// maxLength matches the limit of the kit_random_string MCP tool.
const maxLength = 4096

// Command implements `pnputil random`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the random command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "random <length>",
		Short: "Print a random alphanumeric string",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (*Command) run(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("random: length %q is not an integer", args[0])
	}
	if n > maxLength {
		return fmt.Errorf("random: length must be at most %d, got %d", maxLength, n)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ident.RandomString(n))
	return nil
}
