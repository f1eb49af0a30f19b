// Package run implements the 'ghannotate run' command.
package run

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/flag"
	"github.com/suzuki-shunsuke/ghannotate/pkg/di"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gFlags *flag.GlobalFlags, version string) *cli.Command {
	r := &runner{
		logE:    logE,
		gFlags:  gFlags,
		version: version,
	}
	return r.Command()
}

type runner struct {
	logE    *logrus.Entry
	gFlags  *flag.GlobalFlags
	version string
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Publish findings as annotations of a GitHub check run",
		Description: `Read findings from a file and publish them as annotations of a check run.

$ ghannotate run --input lint.json

The input file is a JSON or YAML array of findings or a SARIF log.

[
  {
    "file": "main.go",
    "line": 10,
    "message": "error is not checked",
    "title": "errcheck",
    "annotation_level": "failure"
  }
]

GitHub allows at most 50 annotations per request, so findings are submitted page by page.
In GitHub Actions, the repository and the commit are taken from the environment variables.
`,
		ArgsUsage: "[<input file path>]",
		Action:    r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "The path of the input file",
			},
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "The name and the output title of the check run. The default is Annotations",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "The format of the input file. One of auto, json, yaml, and sarif",
			},
			&cli.StringFlag{
				Name:    "repo-owner",
				Usage:   "GitHub repository owner",
				Sources: cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
			},
			&cli.StringFlag{
				Name:  "repo-name",
				Usage: "GitHub repository name",
			},
			&cli.StringFlag{
				Name:  "sha",
				Usage: "Commit SHA the check run is created on",
			},
			&cli.BoolFlag{
				Name:  "ignore-missing-file",
				Usage: "Succeed without doing anything if the input file doesn't exist. The default is true",
			},
			&cli.BoolFlag{
				Name:  "ignore-unauthorized-error",
				Usage: "Succeed if the token isn't allowed to create a check run",
			},
			&cli.BoolFlag{
				Name:  "workflow-commands",
				Usage: "Print findings as GitHub Actions workflow commands too",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print annotations without calling GitHub API",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	flags := &di.Flags{
		GlobalFlags:             r.gFlags,
		Input:                   c.String("input"),
		Title:                   c.String("title"),
		Format:                  c.String("format"),
		RepoOwner:               c.String("repo-owner"),
		RepoName:                c.String("repo-name"),
		SHA:                     c.String("sha"),
		IgnoreMissingFile:       boolFlag(c, "ignore-missing-file"),
		IgnoreUnauthorizedError: boolFlag(c, "ignore-unauthorized-error"),
		WorkflowCommands:        boolFlag(c, "workflow-commands"),
		DryRun:                  c.Bool("dry-run"),
	}
	if flags.Input == "" {
		flags.Input = c.Args().First()
	}
	env := stdutil.New()
	di.SetEnv(flags, env.Getenv)
	secrets := &di.Secrets{}
	secrets.SetFromEnv(env.Getenv)
	return di.Run(ctx, r.logE, flags, secrets, r.version) //nolint:wrapcheck
}

func boolFlag(c *cli.Command, name string) *bool {
	if !c.IsSet(name) {
		return nil
	}
	b := c.Bool(name)
	return &b
}
