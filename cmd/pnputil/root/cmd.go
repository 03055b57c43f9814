// Package rootcmd wires the root cobra.Command for the pnputil CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	absolutecmd "github.com/go-ports/pnputil/cmd/pnputil/absolute"
	combinecmd "github.com/go-ports/pnputil/cmd/pnputil/combine"
	configcmd "github.com/go-ports/pnputil/cmd/pnputil/config"
	dateaddcmd "github.com/go-ports/pnputil/cmd/pnputil/dateadd"
	extendcmd "github.com/go-ports/pnputil/cmd/pnputil/extend"
	guidcmd "github.com/go-ports/pnputil/cmd/pnputil/guid"
	insertcmd "github.com/go-ports/pnputil/cmd/pnputil/insert"
	mcpcmd "github.com/go-ports/pnputil/cmd/pnputil/mcp"
	paramcmd "github.com/go-ports/pnputil/cmd/pnputil/param"
	randomcmd "github.com/go-ports/pnputil/cmd/pnputil/random"
	"github.com/go-ports/pnputil/cmd/pnputil/shared"
	stylesheetcmd "github.com/go-ports/pnputil/cmd/pnputil/stylesheet"
	versioncmd "github.com/go-ports/pnputil/cmd/pnputil/version"
)

// New creates and returns the root cobra.Command for the pnputil CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "pnputil",
		Short:         "pnputil — query, date, URL and identifier helpers for web hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.Init(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ctx.ConfigPath, "config", "",
		"Config file (default: $PNPUTIL_CONFIG env → ~/.config/pnputil/config.yaml)")
	pf.StringVar(&ctx.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		guidcmd.New(ctx).Cmd(),
		randomcmd.New(ctx).Cmd(),
		dateaddcmd.New(ctx).Cmd(),
		combinecmd.New(ctx).Cmd(),
		absolutecmd.New(ctx).Cmd(),
		paramcmd.New(ctx).Cmd(),
		insertcmd.New(ctx).Cmd(),
		extendcmd.New(ctx).Cmd(),
		stylesheetcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		versioncmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
