// Package aggregate counts findings by level and derives the summary and the
// conclusion of a check run from the counts.
package aggregate

import (
	"strconv"
	"strings"

	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
)

// Conclusion is the overall result of a completed check run.
type Conclusion string

const (
	ConclusionSuccess Conclusion = "success"
	ConclusionNeutral Conclusion = "neutral"
	ConclusionFailure Conclusion = "failure"
)

// Counts holds the number of findings per level.
type Counts struct {
	Failure int
	Warning int
	Notice  int
}

// Count counts findings by their normalized level.
func Count(findings []*finding.Finding) Counts {
	buckets := make(map[finding.Level]int, 3) //nolint:mnd
	for _, f := range findings {
		buckets[f.Level()]++
	}
	return Counts{
		Failure: buckets[finding.LevelFailure],
		Warning: buckets[finding.LevelWarning],
		Notice:  buckets[finding.LevelNotice],
	}
}

// Total returns the number of counted findings.
func (c Counts) Total() int {
	return c.Failure + c.Warning + c.Notice
}

// Summary returns one line per non-zero level, most severe first.
// It returns an empty string if there is no finding.
func (c Counts) Summary() string {
	lines := make([]string, 0, 3) //nolint:mnd
	for _, l := range []struct {
		count int
		label string
	}{
		{c.Failure, "failure"},
		{c.Warning, "warning"},
		{c.Notice, "notice"},
	} {
		if l.count > 0 {
			lines = append(lines, strconv.Itoa(l.count)+" "+l.label+"(s) found")
		}
	}
	return strings.Join(lines, "\n")
}

// Conclusion returns failure if any failure is found, neutral if only
// warnings or notices are found, and success otherwise.
func (c Counts) Conclusion() Conclusion {
	switch {
	case c.Failure > 0:
		return ConclusionFailure
	case c.Warning > 0 || c.Notice > 0:
		return ConclusionNeutral
	default:
		return ConclusionSuccess
	}
}
