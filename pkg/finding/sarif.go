package finding

import "github.com/suzuki-shunsuke/ghannotate/pkg/sarif"

// FromSARIF converts every result of every run into a finding.
// The rule id becomes the title and results without a region point at line 1.
func FromSARIF(log *sarif.Log) []*Finding {
	findings := []*Finding{}
	for _, run := range log.Runs {
		for _, result := range run.Results {
			file, line := result.File()
			if line <= 0 {
				line = 1
			}
			findings = append(findings, &Finding{
				File:            file,
				Line:            line,
				Message:         result.Message.Text,
				Title:           result.RuleID,
				AnnotationLevel: string(levelFromSARIF(result.Level)),
			})
		}
	}
	return findings
}

func levelFromSARIF(level string) Level {
	switch level {
	case sarif.LevelError:
		return LevelFailure
	case sarif.LevelNote, sarif.LevelNone:
		return LevelNotice
	default:
		// warning is the default level of SARIF results
		return LevelWarning
	}
}
