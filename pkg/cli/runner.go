// Package cli defines the command line interface of ghannotate.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/flag"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/run"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/token"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	return newCommand(logE, ldFlags).Run(ctx, args) //nolint:wrapcheck
}

// newCommand returns the root command.
// urfave.Command sets the version and adds the version and help-all subcommands.
func newCommand(logE *logrus.Entry, ldFlags *stdutil.LDFlags) *cli.Command {
	gFlags := &flag.GlobalFlags{}
	return urfave.Command(ldFlags, &cli.Command{
		Name:  "ghannotate",
		Usage: "Publish findings of linters as annotations of a GitHub check run. https://github.com/suzuki-shunsuke/ghannotate",
		Flags: gFlags.Flags(),
		Commands: []*cli.Command{
			initcmd.New(logE, gFlags),
			run.New(logE, gFlags, ldFlags.Version),
			token.New(logE),
		},
	})
}
