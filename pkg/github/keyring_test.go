package github_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/github"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
	"github.com/zalando/go-keyring"
)

func TestNew_keyring(t *testing.T) { //nolint:paralleltest
	keyring.MockInit()
	if err := ghtoken.NewTokenManager(github.KeyService).Set("ghp_xxx"); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer ghp_xxx" {
			t.Errorf("Authorization: wanted %q, got %q", "Bearer ghp_xxx", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ctx := t.Context()
	client, err := github.New(ctx, logrus.NewEntry(logger), &github.ParamNew{
		APIURL:         server.URL,
		KeyringEnabled: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := client.Checks.CreateCheckRun(ctx, "owner", "repo", github.CreateCheckRunOptions{
		Name:    "lint",
		HeadSHA: "abc123",
	}); err != nil {
		t.Fatal(err)
	}
}
