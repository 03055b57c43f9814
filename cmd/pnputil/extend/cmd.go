// Package extendcmd implements the `pnputil extend` command.
package extendcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/objutil"
)

// Command implements `pnputil extend`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	noOverwrite bool
}

// New creates the extend command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "extend <target-json> <source-json>",
		Short: "Shallow-merge two JSON objects",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	c.cmd.Flags().BoolVar(&c.noOverwrite, "no-overwrite", false, "Keep keys already present in the target")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	out, err := objutil.ExtendJSON([]byte(args[0]), []byte(args[1]), c.noOverwrite)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
