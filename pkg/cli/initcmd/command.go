// Package initcmd implements the 'ghannotate init' command.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/flag"
	"github.com/suzuki-shunsuke/ghannotate/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/ghannotate/pkg/log"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:   logE,
		gFlags: gFlags,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	gFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .ghannotate.yaml if it doesn't exist",
		Description: `Create .ghannotate.yaml if it doesn't exist

$ ghannotate init

You can also pass configuration file path.

e.g.

$ ghannotate init .github/ghannotate.yaml
`,
		ArgsUsage: "[<configuration file path>]",
		Action:    r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, r.gFlags.LogLevel, r.gFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".ghannotate.yaml"
	}
	ctrl := initcmd.New(afero.NewOsFs())
	return ctrl.Init(r.logE, configFilePath) //nolint:wrapcheck
}
