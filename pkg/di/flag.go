package di

import (
	"github.com/suzuki-shunsuke/ghannotate/pkg/cli/flag"
)

// Flags holds all command-line flags and environment variables for the run command.
type Flags struct {
	*flag.GlobalFlags

	Input  string
	Title  string
	Format string

	RepoOwner string
	RepoName  string
	SHA       string

	// nil means the flag isn't set. Then action inputs, the configuration
	// file, and defaults are used in this order.
	IgnoreMissingFile       *bool
	IgnoreUnauthorizedError *bool
	WorkflowCommands        *bool
	DryRun                  bool

	IsGitHubActions bool
	KeyringEnabled  bool

	GitHubRepository string
	GitHubSHA        string
	GitHubAPIURL     string
	GitHubEventPath  string

	Inputs *ActionInputs
}

// ActionInputs holds the inputs of the GitHub Action, which are passed as INPUT_* environment variables.
type ActionInputs struct {
	Input                   string
	Title                   string
	IgnoreMissingFile       string
	IgnoreUnauthorizedError string
}

func (f *Flags) inputs() *ActionInputs {
	if f.Inputs == nil {
		return &ActionInputs{}
	}
	return f.Inputs
}
