package di

import (
	"strings"

	"github.com/spf13/afero"
)

type repoContext struct {
	Owner string
	Name  string
	SHA   string
}

func (rc *repoContext) complete() bool {
	return rc.Owner != "" && rc.Name != "" && rc.SHA != ""
}

// resolveRepo resolves the repository and the commit the check run is created on.
// Command line flags take precedence over GITHUB_REPOSITORY and the event payload.
// The head commit of the pull request takes precedence over GITHUB_SHA,
// because GITHUB_SHA is the merge commit in pull_request events.
func resolveRepo(fs afero.Fs, flags *Flags) (*repoContext, error) {
	rc := &repoContext{
		Owner: flags.RepoOwner,
		Name:  flags.RepoName,
		SHA:   flags.SHA,
	}
	if owner, name, ok := strings.Cut(flags.GitHubRepository, "/"); ok {
		if rc.Owner == "" {
			rc.Owner = owner
		}
		if rc.Name == "" {
			rc.Name = name
		}
	}
	if !rc.complete() && flags.GitHubEventPath != "" {
		ev := &Event{}
		if err := readEvent(fs, ev, flags.GitHubEventPath); err != nil {
			return nil, err
		}
		if rc.Owner == "" {
			rc.Owner = ev.RepoOwner()
		}
		if rc.Name == "" {
			rc.Name = ev.RepoName()
		}
		if rc.SHA == "" {
			rc.SHA = ev.SHA()
		}
	}
	if rc.SHA == "" {
		rc.SHA = flags.GitHubSHA
	}
	return rc, nil
}
