package publish

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/suzuki-shunsuke/ghannotate/pkg/aggregate"
	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
)

type colorFunc func(a ...interface{}) string

// Console prints human readable output to stderr.
type Console struct {
	stderr io.Writer
	red    colorFunc
	yellow colorFunc
	cyan   colorFunc
	green  colorFunc
}

func NewConsole(stderr io.Writer) *Console {
	return &Console{
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

func (c *Console) label(level finding.Level) string {
	switch level {
	case finding.LevelNotice:
		return c.cyan("NOTICE")
	case finding.LevelWarning:
		return c.yellow("WARNING")
	default:
		return c.red("FAILURE")
	}
}

// Summary prints the number of findings per level.
func (c *Console) Summary(counts aggregate.Counts) {
	if counts.Total() == 0 {
		fmt.Fprintln(c.stderr, c.green("SUCCESS"), "no finding")
		return
	}
	for _, l := range []struct {
		level finding.Level
		count int
	}{
		{finding.LevelFailure, counts.Failure},
		{finding.LevelWarning, counts.Warning},
		{finding.LevelNotice, counts.Notice},
	} {
		if l.count > 0 {
			fmt.Fprintf(c.stderr, "%s %d %s(s) found\n", c.label(l.level), l.count, l.level)
		}
	}
}

// Pages prints the annotations that would be submitted, page by page.
func (c *Console) Pages(pages [][]*finding.Finding) {
	for i, page := range pages {
		fmt.Fprintf(c.stderr, "page %d/%d (%d annotations)\n", i+1, len(pages), len(page))
		for _, f := range page {
			title := ""
			if f.Title != "" {
				title = " " + f.Title
			}
			fmt.Fprintf(c.stderr, `%s %s:%d%s
%s
`, c.label(f.Level()), f.File, f.Line, title, f.Message)
		}
	}
}
