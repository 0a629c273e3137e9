package gen

import (
	"strings"

	"settings-generator/internal/schema"
)

// Docs renders the documentation text for one key. The layout is fixed:
// the summary (when non-empty) and a blank line, then the default
// literal, then a min/max block only when at least one bound is
// present, with both bounds joined by "; " on one line.
func Docs(key *schema.Key) string {
	var b strings.Builder

	if key.Summary != "" {
		b.WriteString(key.Summary)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString("default: ")
	b.WriteString(key.Default)

	if key.Range != nil {
		minSet := key.Range.Min != ""
		maxSet := key.Range.Max != ""

		if minSet || maxSet {
			b.WriteString("\n\n")
		}

		if minSet {
			b.WriteString("min: ")
			b.WriteString(key.Range.Min)
		}

		if minSet && maxSet {
			b.WriteString("; ")
		}

		if maxSet {
			b.WriteString("max: ")
			b.WriteString(key.Range.Max)
		}
	}

	return b.String()
}
