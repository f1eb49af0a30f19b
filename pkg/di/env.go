package di

import (
	"strings"

	"github.com/suzuki-shunsuke/go-stdutil"
)

// Secrets holds sensitive tokens for GitHub API authentication.
type Secrets struct {
	GitHubToken string
}

// SetFromEnv sets secrets from environment variables.
// The action input repo-token takes precedence over GITHUB_TOKEN.
func (s *Secrets) SetFromEnv(getEnv stdutil.Getenv) {
	for _, envName := range []string{"GHANNOTATE_GITHUB_TOKEN", "INPUT_REPO-TOKEN", "GITHUB_TOKEN"} {
		if token := getEnv(envName); token != "" {
			s.GitHubToken = token
			return
		}
	}
}

// SetEnv populates flags from environment variables.
func SetEnv(flags *Flags, getEnv stdutil.Getenv) {
	flags.GitHubRepository = getEnv("GITHUB_REPOSITORY")
	flags.GitHubSHA = getEnv("GITHUB_SHA")
	flags.GitHubAPIURL = getEnv("GITHUB_API_URL")
	flags.GitHubEventPath = getEnv("GITHUB_EVENT_PATH")
	trueS := "true"
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == trueS
	flags.KeyringEnabled = getEnv("GHANNOTATE_KEYRING_ENABLED") == trueS
	flags.Inputs = &ActionInputs{
		Input:                   getEnv("INPUT_INPUT"),
		Title:                   getEnv("INPUT_TITLE"),
		IgnoreMissingFile:       getEnv("INPUT_IGNORE-MISSING-FILE"),
		IgnoreUnauthorizedError: getEnv("INPUT_IGNORE-UNAUTHORIZED-ERROR"),
	}
}

// ParseBool parses a boolean action input.
// Case-insensitive "true" and "1" are true, and anything else is false.
func ParseBool(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || s == "1"
}
