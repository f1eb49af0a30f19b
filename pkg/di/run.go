// Package di provides dependency injection for the ghannotate CLI.
// It resolves flags, action inputs, environment variables, and the
// configuration file into the parameter of the publish controller, and wires
// the GitHub API client to it.
package di

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghannotate/pkg/apperr"
	"github.com/suzuki-shunsuke/ghannotate/pkg/config"
	"github.com/suzuki-shunsuke/ghannotate/pkg/controller/publish"
	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
	"github.com/suzuki-shunsuke/ghannotate/pkg/github"
	"github.com/suzuki-shunsuke/ghannotate/pkg/log"
)

const defaultTitle = "Annotations"

// Run executes the run command.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets, version string) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	if err := log.Set(logE, flags.LogLevel, flags.LogColor); err != nil {
		return apperr.New(apperr.KindConfig, "", err)
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, flags.Config)
	if err != nil {
		return apperr.New(apperr.KindConfig, "", err)
	}
	if err := config.CheckRequiredVersion(cfg.RequiredVersion, version); err != nil {
		return apperr.New(apperr.KindConfig, "", err)
	}

	param, err := buildParam(fs, flags, cfg)
	if err != nil {
		return err
	}
	param.Stdout = os.Stdout
	param.Stderr = os.Stderr
	if !param.DryRun && secrets.GitHubToken == "" && !flags.KeyringEnabled {
		return apperr.New(apperr.KindConfig, "a GitHub access token is required. Please set the input repo-token or the environment variable GITHUB_TOKEN", nil)
	}

	gh, err := github.New(ctx, logE, &github.ParamNew{
		Token:          secrets.GitHubToken,
		APIURL:         flags.GitHubAPIURL,
		KeyringEnabled: flags.KeyringEnabled,
	})
	if err != nil {
		return apperr.New(apperr.KindConfig, "", err)
	}

	ctrl := publish.New(gh.Checks, finding.NewReader(fs), param)
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

// buildParam resolves the parameter of the publish controller.
// The precedence is command line flags, action inputs, the configuration file, and defaults.
func buildParam(fs afero.Fs, flags *Flags, cfg *config.Config) (*publish.Param, error) {
	inputs := flags.inputs()
	param := &publish.Param{
		InputPath:               firstNonEmpty(flags.Input, inputs.Input),
		Title:                   firstNonEmpty(flags.Title, inputs.Title, cfg.Title, defaultTitle),
		Format:                  firstNonEmpty(flags.Format, cfg.Format),
		IgnoreMissingFile:       resolveBool(flags.IgnoreMissingFile, inputs.IgnoreMissingFile, cfg.IgnoreMissingFile, true),
		IgnoreUnauthorizedError: resolveBool(flags.IgnoreUnauthorizedError, inputs.IgnoreUnauthorizedError, cfg.IgnoreUnauthorizedError, false),
		WorkflowCommands:        resolveBool(flags.WorkflowCommands, "", cfg.WorkflowCommands, false),
		DryRun:                  flags.DryRun,
	}
	if param.InputPath == "" {
		return nil, apperr.New(apperr.KindConfig, "the input file path is required. Please set the input input or the flag --input", nil)
	}

	rc, err := resolveRepo(fs, flags)
	if err != nil {
		return nil, apperr.New(apperr.KindConfig, "resolve the repository", err)
	}
	param.RepoOwner = rc.Owner
	param.RepoName = rc.Name
	param.SHA = rc.SHA
	if param.DryRun {
		return param, nil
	}
	if rc.Owner == "" || rc.Name == "" {
		return nil, apperr.New(apperr.KindConfig, "the repository owner and name are required. Please set the flags --repo-owner and --repo-name or the environment variable GITHUB_REPOSITORY", nil)
	}
	if rc.SHA == "" {
		return nil, apperr.New(apperr.KindConfig, "the commit SHA is required. Please set the flag --sha or the environment variable GITHUB_SHA", nil)
	}
	return param, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveBool(flagValue *bool, input string, cfgValue *bool, defaultValue bool) bool {
	if flagValue != nil {
		return *flagValue
	}
	if input != "" {
		return ParseBool(input)
	}
	if cfgValue != nil {
		return *cfgValue
	}
	return defaultValue
}
