// Package github creates the GitHub API client ghannotate uses to publish
// check runs. The client authenticates with a token from the environment or,
// if enabled, from the OS keyring, and supports GitHub Enterprise Server
// through a custom API URL.
package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v74/github"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/log"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
	"golang.org/x/oauth2"
)

type (
	Client                = github.Client
	Response              = github.Response
	RateLimitError        = github.RateLimitError
	AbuseRateLimitError   = github.AbuseRateLimitError
	CheckRun              = github.CheckRun
	CheckRunOutput        = github.CheckRunOutput
	CheckRunAnnotation    = github.CheckRunAnnotation
	CreateCheckRunOptions = github.CreateCheckRunOptions
	UpdateCheckRunOptions = github.UpdateCheckRunOptions
)

const (
	// DefaultAPIURL is the API URL of github.com.
	DefaultAPIURL = "https://api.github.com"
	// KeyService is the service name of the GitHub access token in the OS keyring.
	KeyService = "suzuki-shunsuke/ghannotate"
)

// ParamNew is the input of New.
type ParamNew struct {
	Token string
	// APIURL is the REST API endpoint of GitHub Enterprise Server.
	// If it is empty or DefaultAPIURL, github.com is used.
	APIURL         string
	KeyringEnabled bool
}

// New creates a GitHub API client.
func New(ctx context.Context, logE *logrus.Entry, param *ParamNew) (*Client, error) {
	client := github.NewClient(getHTTPClientForGitHub(ctx, logE, param))
	if param.APIURL == "" || param.APIURL == DefaultAPIURL {
		return client, nil
	}
	c, err := client.WithEnterpriseURLs(param.APIURL, param.APIURL)
	if err != nil {
		return nil, fmt.Errorf("configure GitHub Enterprise Server URLs: %w", err)
	}
	return c, nil
}

// Ptr returns a pointer to the provided value.
func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

// StatusCode returns the HTTP status code of resp, or 0 if resp is nil.
func StatusCode(resp *Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

func getHTTPClientForGitHub(ctx context.Context, logE *logrus.Entry, param *ParamNew) *http.Client {
	if param.Token == "" {
		if param.KeyringEnabled {
			return oauth2.NewClient(ctx, ghtoken.NewTokenSource(log.NewSlog(logE), KeyService))
		}
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: param.Token},
	))
}
