package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/github"
)

func TestNew_enterprise(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization: wanted %q, got %q", "Bearer test-token", got)
		}
		if r.Method != http.MethodPost || r.URL.Path != "/api/v3/repos/owner/repo/check-runs" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Error(err)
		}
		if body["head_sha"] != "abc123" {
			t.Errorf("head_sha: wanted abc123, got %v", body["head_sha"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "status": "in_progress"}`))
	}))
	defer server.Close()

	ctx := context.Background()
	client, err := github.New(ctx, logrus.NewEntry(logrus.New()), &github.ParamNew{
		Token:  "test-token",
		APIURL: server.URL,
	})
	if err != nil {
		t.Fatal(err)
	}
	run, resp, err := client.Checks.CreateCheckRun(ctx, "owner", "repo", github.CreateCheckRunOptions{
		Name:    "lint",
		HeadSHA: "abc123",
		Status:  github.Ptr("in_progress"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if run.GetID() != 42 {
		t.Errorf("check run id: wanted 42, got %d", run.GetID())
	}
	if code := github.StatusCode(resp); code != http.StatusCreated {
		t.Errorf("status code: wanted %d, got %d", http.StatusCreated, code)
	}
}

func TestNew_default(t *testing.T) {
	t.Parallel()
	client, err := github.New(context.Background(), logrus.NewEntry(logrus.New()), &github.ParamNew{
		Token:  "test-token",
		APIURL: github.DefaultAPIURL,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := client.BaseURL.String(); got != "https://api.github.com/" {
		t.Errorf("wanted https://api.github.com/, got %s", got)
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()
	if code := github.StatusCode(nil); code != 0 {
		t.Errorf("nil response: wanted 0, got %d", code)
	}
	if code := github.StatusCode(&github.Response{}); code != 0 {
		t.Errorf("empty response: wanted 0, got %d", code)
	}
	resp := &github.Response{Response: &http.Response{StatusCode: http.StatusForbidden}}
	if code := github.StatusCode(resp); code != http.StatusForbidden {
		t.Errorf("wanted %d, got %d", http.StatusForbidden, code)
	}
}
