// Package publish implements the core of ghannotate.
// It reads findings, counts them by level, derives the summary and the
// conclusion, creates a check run, and submits the findings as annotations
// page by page. All pages update the same check run in order, and only the
// last update completes it.
package publish

import (
	"context"
	"io"

	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
	"github.com/suzuki-shunsuke/ghannotate/pkg/github"
)

type Controller struct {
	checks  ChecksService
	reader  FindingReader
	param   *Param
	console *Console
}

// ChecksService is the subset of the GitHub Checks API ghannotate calls.
type ChecksService interface {
	CreateCheckRun(ctx context.Context, owner, repo string, opts github.CreateCheckRunOptions) (*github.CheckRun, *github.Response, error)
	UpdateCheckRun(ctx context.Context, owner, repo string, checkRunID int64, opts github.UpdateCheckRunOptions) (*github.CheckRun, *github.Response, error)
}

type FindingReader interface {
	Read(path, format string) ([]*finding.Finding, error)
}

// Param is the resolved configuration of a run.
type Param struct {
	RepoOwner               string
	RepoName                string
	SHA                     string
	Title                   string
	InputPath               string
	Format                  string
	IgnoreMissingFile       bool
	IgnoreUnauthorizedError bool
	DryRun                  bool
	WorkflowCommands        bool
	Stdout                  io.Writer
	Stderr                  io.Writer
}

func New(checks ChecksService, reader FindingReader, param *Param) *Controller {
	return &Controller{
		checks:  checks,
		reader:  reader,
		param:   param,
		console: NewConsole(param.Stderr),
	}
}
