// Package ghactions writes GitHub Actions workflow commands.
// https://docs.github.com/en/actions/reference/workflow-commands-for-github-actions
package ghactions

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

// Command writes a workflow command such as `::warning file=a.go,line=1::message`.
// Empty properties are omitted and the remaining ones are sorted by key.
func Command(w io.Writer, name string, properties map[string]string, message string) error {
	keys := make([]string, 0, len(properties))
	for k, v := range properties {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	props := make([]string, len(keys))
	for i, k := range keys {
		props[i] = k + "=" + propertyEscaper.Replace(properties[k])
	}
	cmd := "::" + name
	if len(props) > 0 {
		cmd += " " + strings.Join(props, ",")
	}
	if _, err := fmt.Fprintf(w, "%s::%s\n", cmd, dataEscaper.Replace(message)); err != nil {
		return fmt.Errorf("write a workflow command: %w", err)
	}
	return nil
}

// Error writes an `::error::` command without a location.
func Error(w io.Writer, message string) error {
	return Command(w, "error", nil, message)
}
