package di

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Event represents a GitHub Actions event payload.
type Event struct {
	PullRequest *PullRequest `json:"pull_request"`
	Repository  *Repository  `json:"repository"`
}

// RepoOwner extracts the repository owner from the GitHub event.
func (e *Event) RepoOwner() string {
	if e != nil && e.Repository != nil && e.Repository.Owner != nil {
		return e.Repository.Owner.Login
	}
	return ""
}

// RepoName extracts the repository name from the GitHub event.
func (e *Event) RepoName() string {
	if e != nil && e.Repository != nil {
		return e.Repository.Name
	}
	return ""
}

// SHA extracts the head commit SHA of the pull request from the GitHub event.
func (e *Event) SHA() string {
	if e == nil {
		return ""
	}
	if e.PullRequest != nil && e.PullRequest.Head != nil {
		return e.PullRequest.Head.SHA
	}
	return ""
}

// PullRequest represents a GitHub pull request in the event payload.
type PullRequest struct {
	Number int   `json:"number"`
	Head   *Head `json:"head"`
}

// Repository represents a GitHub repository in the event payload.
type Repository struct {
	Owner *Owner `json:"owner"`
	Name  string `json:"name"`
}

// Owner represents a GitHub repository owner in the event payload.
type Owner struct {
	Login string `json:"login"`
}

// Head represents the head branch of a pull request.
type Head struct {
	SHA string `json:"sha"`
}

func readEvent(fs afero.Fs, ev *Event, eventPath string) error {
	event, err := fs.Open(eventPath)
	if err != nil {
		return fmt.Errorf("read GITHUB_EVENT_PATH: %w", err)
	}
	defer event.Close()
	if err := json.NewDecoder(event).Decode(ev); err != nil {
		return fmt.Errorf("unmarshal GITHUB_EVENT_PATH: %w", err)
	}
	return nil
}
