// Package dateaddcmd implements the `pnputil date-add` command.
package dateaddcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	"github.com/go-ports/pnputil/pkg/dateutil"
)

// Command implements `pnputil date-add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the date-add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "date-add <rfc3339-date> <unit> <amount>",
		Short: "Add an interval (year, quarter, month, week, day, hour, minute, second) to a date",
		Args:  cobra.ExactArgs(3),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (*Command) run(cmd *cobra.Command, args []string) error {
	t, err := time.Parse(time.RFC3339, args[0])
	if err != nil {
		return fmt.Errorf("date-add: %w", err)
	}
	amount, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("date-add: amount %q is not an integer", args[2])
	}
	unit, ok := dateutil.ParseUnit(args[1])
	if !ok {
		return fmt.Errorf("date-add: unrecognized unit %q", args[1])
	}
	out, ok := dateutil.AddUnit(t, unit, amount)
	if !ok {
		return fmt.Errorf("date-add: %d %s is out of range", amount, unit)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Format(time.RFC3339))
	return nil
}
