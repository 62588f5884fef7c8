package render

import (
	"fmt"
	"strings"

	"lucid"
)

// Short renders the tree one line per node, stable across runs and safe for
// golden files: summaries collapse to single lines, nesting shows as
// two-space indentation, and highlights are counted rather than drawn.
func Short(ufe lucid.UserFacingError) string {
	var b strings.Builder
	writeShort(&b, ufe, 0)
	return b.String()
}

func writeShort(b *strings.Builder, ufe lucid.UserFacingError, depth int) {
	label := "error"
	if depth > 0 {
		label = "cause"
	}
	fmt.Fprintf(b, "%s%s: %s", strings.Repeat("  ", depth), label, sanitizeSummary(ufe.Cause.Summary))
	switch n := len(ufe.Cause.Highlights); {
	case n == 1:
		b.WriteString(" [1 highlight]")
	case n > 1:
		fmt.Fprintf(b, " [%d highlights]", n)
	}
	b.WriteByte('\n')
	for _, rel := range ufe.Related {
		writeShort(b, rel, depth+1)
	}
}

// sanitizeSummary keeps each node on a single, tab-free line.
func sanitizeSummary(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	msg = strings.ReplaceAll(msg, "\t", " ")
	return strings.TrimSpace(msg)
}
