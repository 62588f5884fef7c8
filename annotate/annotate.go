// Package annotate renders labeled byte ranges of captured file content as a
// terminal source report: a position header, numbered source lines, and a
// caret row per label, each label in its own color.
package annotate

import "github.com/fatih/color"

// Kind classifies a report for the header line and its coloring.
type Kind uint8

const (
	KindError Kind = iota
	KindWarning
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "warning"
	case KindNote:
		return "note"
	default:
		return "error"
	}
}

// Label marks the half-open byte range [Start, End) of the report content.
// Ranges that fall outside the content are clamped, never rejected.
type Label struct {
	Start   int
	End     int
	Message string
	Color   *color.Color
}

// Report is one source annotation request: a captured file plus the labels
// to draw on it. Content is the text exactly as it was when the error was
// recorded; it is never re-read from disk and never normalized, since label
// offsets index it byte for byte.
type Report struct {
	kind    Kind
	path    string
	content string
	labels  []Label
}

// New starts a report for the given file snapshot.
func New(kind Kind, path, content string) Report {
	return Report{kind: kind, path: path, content: content}
}

func (r Report) WithLabel(l Label) Report {
	r.labels = append(r.labels, l)
	return r
}

// Options controls layout. The zero value renders unbounded width with no
// context lines.
type Options struct {
	// Width is the advisory maximum display width. Source and caret rows
	// wider than this are truncated with an ellipsis; 0 disables truncation.
	Width int
	// Context is the number of extra source lines shown above and below
	// each labeled line.
	Context int
}

// Render lays the labels out against the content and returns the report
// text. It always succeeds; malformed ranges degrade to clamped positions.
func (r Report) Render(opts Options) string {
	return layout(r, opts)
}
