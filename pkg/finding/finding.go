// Package finding defines the diagnostic records ghannotate publishes and
// reads them from JSON, YAML, or SARIF files.
package finding

// Level is the severity of a finding. The values match the annotation_level
// of the GitHub Checks API.
type Level string

const (
	LevelNotice  Level = "notice"
	LevelWarning Level = "warning"
	LevelFailure Level = "failure"
)

// NormalizeLevel maps a raw annotation level to a Level.
// Any value other than notice, warning, and failure, including an empty
// string, is treated as failure so that unclassified findings stay visible.
func NormalizeLevel(s string) Level {
	switch l := Level(s); l {
	case LevelNotice, LevelWarning, LevelFailure:
		return l
	default:
		return LevelFailure
	}
}

// Finding is a single diagnostic read from the input file.
type Finding struct {
	File            string `json:"file" yaml:"file"`
	Line            int    `json:"line" yaml:"line"`
	Message         string `json:"message" yaml:"message"`
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	AnnotationLevel string `json:"annotation_level,omitempty" yaml:"annotation_level,omitempty"`
}

// Level returns the normalized level of the finding.
func (f *Finding) Level() Level {
	return NormalizeLevel(f.AnnotationLevel)
}
