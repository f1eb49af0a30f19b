package finding_test

import (
	"testing"

	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
)

func TestNormalizeLevel(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		input string
		exp   finding.Level
	}{
		{name: "notice", input: "notice", exp: finding.LevelNotice},
		{name: "warning", input: "warning", exp: finding.LevelWarning},
		{name: "failure", input: "failure", exp: finding.LevelFailure},
		{name: "empty", input: "", exp: finding.LevelFailure},
		{name: "unknown", input: "error", exp: finding.LevelFailure},
		{name: "case sensitive", input: "Warning", exp: finding.LevelFailure},
		{name: "padded", input: " notice", exp: finding.LevelFailure},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := finding.NormalizeLevel(d.input); got != d.exp {
				t.Errorf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}

func TestFinding_Level(t *testing.T) {
	t.Parallel()
	f := &finding.Finding{File: "main.go", Line: 1, Message: "foo"}
	if got := f.Level(); got != finding.LevelFailure {
		t.Errorf("absent level: wanted failure, got %s", got)
	}
	f.AnnotationLevel = "notice"
	if got := f.Level(); got != finding.LevelNotice {
		t.Errorf("wanted notice, got %s", got)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		path   string
		format string
		exp    string
		isErr  bool
	}{
		{name: "json by default", path: "findings.json", exp: finding.FormatJSON},
		{name: "no extension", path: "findings", exp: finding.FormatJSON},
		{name: "auto sarif", path: "results.sarif", format: "auto", exp: finding.FormatSARIF},
		{name: "yaml", path: "findings.yaml", exp: finding.FormatYAML},
		{name: "yml upper case", path: "FINDINGS.YML", exp: finding.FormatYAML},
		{name: "explicit format wins", path: "results.sarif", format: "json", exp: finding.FormatJSON},
		{name: "invalid format", path: "findings.json", format: "xml", isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, err := finding.DetectFormat(d.path, d.format)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if got != d.exp {
				t.Errorf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}
