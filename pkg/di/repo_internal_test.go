package di

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func Test_resolveRepo(t *testing.T) { //nolint:funlen
	t.Parallel()
	const pullRequestEvent = `{
  "pull_request": {"number": 10, "head": {"sha": "head-sha"}},
  "repository": {"owner": {"login": "event-owner"}, "name": "event-repo"}
}`
	data := []struct {
		name  string
		flags *Flags
		event string
		exp   *repoContext
		isErr bool
	}{
		{
			name:  "flags",
			flags: &Flags{RepoOwner: "owner", RepoName: "repo", SHA: "sha", GitHubRepository: "foo/bar", GitHubSHA: "github-sha", GitHubEventPath: "event.json"},
			event: "{",
			exp:   &repoContext{Owner: "owner", Name: "repo", SHA: "sha"},
		},
		{
			name:  "GITHUB_REPOSITORY and GITHUB_SHA",
			flags: &Flags{GitHubRepository: "owner/repo", GitHubSHA: "github-sha"},
			exp:   &repoContext{Owner: "owner", Name: "repo", SHA: "github-sha"},
		},
		{
			name:  "the head of the pull request takes precedence over GITHUB_SHA",
			flags: &Flags{GitHubRepository: "owner/repo", GitHubSHA: "merge-sha", GitHubEventPath: "event.json"},
			event: pullRequestEvent,
			exp:   &repoContext{Owner: "owner", Name: "repo", SHA: "head-sha"},
		},
		{
			name:  "repository from the event",
			flags: &Flags{GitHubSHA: "github-sha", GitHubEventPath: "event.json"},
			event: `{"repository": {"owner": {"login": "event-owner"}, "name": "event-repo"}}`,
			exp:   &repoContext{Owner: "event-owner", Name: "event-repo", SHA: "github-sha"},
		},
		{
			name:  "invalid event",
			flags: &Flags{GitHubRepository: "owner/repo", GitHubEventPath: "event.json"},
			event: "{",
			isErr: true,
		},
		{
			name:  "nothing",
			flags: &Flags{},
			exp:   &repoContext{},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.event != "" {
				if err := afero.WriteFile(fs, "event.json", []byte(d.event), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			rc, err := resolveRepo(fs, d.flags)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if diff := cmp.Diff(d.exp, rc); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
