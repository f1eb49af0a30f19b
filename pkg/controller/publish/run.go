package publish

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/aggregate"
	"github.com/suzuki-shunsuke/ghannotate/pkg/apperr"
	"github.com/suzuki-shunsuke/ghannotate/pkg/batch"
	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
	"github.com/suzuki-shunsuke/ghannotate/pkg/github"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

// Run publishes the findings of the input file as a check run.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	logE = logE.WithField("input", c.param.InputPath)
	findings, err := c.reader.Read(c.param.InputPath, c.param.Format)
	if err != nil {
		if c.param.IgnoreMissingFile && apperr.Is(err, apperr.KindMissingFile) {
			logE.Warn("skip publishing annotations because the input file isn't found")
			return nil
		}
		return fmt.Errorf("read findings: %w", err)
	}

	counts := aggregate.Count(findings)
	c.console.Summary(counts)
	if c.param.WorkflowCommands {
		if err := writeWorkflowCommands(c.param.Stdout, findings); err != nil {
			return err
		}
	}

	pages := batch.Split(findings, batch.MaxAnnotations)
	if c.param.DryRun {
		c.console.Pages(pages)
		logE.Info("skip publishing annotations because dry-run is enabled")
		return nil
	}

	checkRunID, err := c.createCheckRun(ctx)
	if err != nil {
		if c.param.IgnoreUnauthorizedError && apperr.Is(err, apperr.KindUnauthorized) {
			logerr.WithError(logE, err).Warn("ignore the error because the token isn't allowed to create a check run")
			return nil
		}
		return err
	}
	logE = logE.WithField("check_run_id", checkRunID)
	logE.Debug("created a check run")
	return c.publish(ctx, logE, checkRunID, pages, counts)
}

func (c *Controller) createCheckRun(ctx context.Context) (int64, error) {
	owner, repo := c.param.RepoOwner, c.param.RepoName
	run, resp, err := c.checks.CreateCheckRun(ctx, owner, repo, github.CreateCheckRunOptions{
		Name:    c.param.Title,
		HeadSHA: c.param.SHA,
		Status:  github.Ptr(statusInProgress),
	})
	if err != nil {
		err = logerr.WithFields(err, logrus.Fields{
			"repo_owner": owner,
			"repo_name":  repo,
			"sha":        c.param.SHA,
		})
		if isRateLimitError(err) {
			return 0, apperr.New(apperr.KindAPI, fmt.Sprintf("the GitHub API rate limit is exceeded while creating a check run on %s/%s", owner, repo), err)
		}
		switch github.StatusCode(resp) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return 0, apperr.New(apperr.KindUnauthorized, fmt.Sprintf(
				"unable to create a check run, please make sure that the GitHub token has the checks:write permission on %s/%s", owner, repo), err)
		default:
			return 0, apperr.New(apperr.KindAPI, fmt.Sprintf("create a check run on %s/%s", owner, repo), err)
		}
	}
	return run.GetID(), nil
}

// isRateLimitError reports whether err is caused by the primary or secondary rate limit.
// GitHub responds to them with 403 too, but they aren't permission errors.
func isRateLimitError(err error) bool {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr)
}

// publish submits the pages sequentially.
// Intermediate updates carry only the output. The last update completes the
// check run with the conclusion. If there is no page, a single update
// without annotations completes the check run.
func (c *Controller) publish(ctx context.Context, logE *logrus.Entry, checkRunID int64, pages [][]*finding.Finding, counts aggregate.Counts) error {
	if len(pages) == 0 {
		pages = [][]*finding.Finding{nil}
	}
	summary := counts.Summary()
	conclusion := counts.Conclusion()
	for i, page := range pages {
		opts := github.UpdateCheckRunOptions{
			Name: c.param.Title,
			Output: &github.CheckRunOutput{
				Title:       github.Ptr(c.param.Title),
				Summary:     github.Ptr(summary),
				Annotations: toAnnotations(page),
			},
		}
		if i == len(pages)-1 {
			opts.Status = github.Ptr(statusCompleted)
			opts.Conclusion = github.Ptr(string(conclusion))
		}
		logE.WithFields(logrus.Fields{
			"page":        i + 1,
			"pages":       len(pages),
			"annotations": len(page),
		}).Debug("update the check run")
		if _, _, err := c.checks.UpdateCheckRun(ctx, c.param.RepoOwner, c.param.RepoName, checkRunID, opts); err != nil {
			return apperr.New(apperr.KindAPI, fmt.Sprintf(
				`unable to update a check run {owner: %q, repo: %q, check_run_id: %d}`,
				c.param.RepoOwner, c.param.RepoName, checkRunID), err)
		}
	}
	logE.WithFields(logrus.Fields{
		"conclusion":  conclusion,
		"annotations": counts.Total(),
	}).Info("published annotations")
	return nil
}

func toAnnotations(findings []*finding.Finding) []*github.CheckRunAnnotation {
	annotations := make([]*github.CheckRunAnnotation, len(findings))
	for i, f := range findings {
		annotations[i] = toAnnotation(f)
	}
	return annotations
}

func toAnnotation(f *finding.Finding) *github.CheckRunAnnotation {
	a := &github.CheckRunAnnotation{
		Path:            github.Ptr(f.File),
		StartLine:       github.Ptr(f.Line),
		EndLine:         github.Ptr(f.Line),
		AnnotationLevel: github.Ptr(string(f.Level())),
		Message:         github.Ptr(f.Message),
	}
	if f.Title != "" {
		a.Title = github.Ptr(f.Title)
	}
	return a
}
