package publish

import (
	"io"
	"strconv"

	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
	"github.com/suzuki-shunsuke/ghannotate/pkg/ghactions"
)

// writeWorkflowCommands prints findings as workflow commands so that GitHub
// Actions shows them even if no check run can be created.
func writeWorkflowCommands(w io.Writer, findings []*finding.Finding) error {
	for _, f := range findings {
		props := map[string]string{
			"file":  f.File,
			"title": f.Title,
		}
		if f.Line > 0 {
			props["line"] = strconv.Itoa(f.Line)
		}
		if err := ghactions.Command(w, commandName(f.Level()), props, f.Message); err != nil {
			return err //nolint:wrapcheck
		}
	}
	return nil
}

func commandName(level finding.Level) string {
	if level == finding.LevelFailure {
		return "error"
	}
	return string(level)
}
