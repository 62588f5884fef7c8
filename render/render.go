// Package render serializes resolved UserFacingError trees for people and
// machines: pretty terminal text, JSON, and a stable short form.
package render

import (
	"fmt"
	"io"
	"strings"

	"lucid"
	"lucid/annotate"
)

// detailHeader introduces the related-error section. It is printed once per
// render, at the outermost level only.
const detailHeader = "Detailed informations:"

// PrettyOpts controls Pretty.
type PrettyOpts struct {
	// Width is the advisory maximum display width. It bounds source lines
	// inside highlights, never summaries or reasons; 0 means unbounded.
	Width int
	// Context is the number of source lines shown around each labeled
	// line of a highlight.
	Context int
}

// state propagates render position through the recursion. Nested levels
// receive a derived copy with firstRun cleared.
type state struct {
	opts     PrettyOpts
	firstRun bool
}

func (s state) inner() state {
	s.firstRun = false
	return s
}

// ForTerminal renders the error tree as terminal text bounded by the
// advisory maxWidth. It never fails; missing optional fields are simply
// absent from the output.
func ForTerminal(ufe lucid.UserFacingError, maxWidth int) string {
	var b strings.Builder
	Pretty(&b, ufe, PrettyOpts{Width: maxWidth})
	return b.String()
}

// Pretty renders the error tree to w: the summary line, a blank line plus
// the extended reason when present, one annotated source report per
// highlight, and the related errors in order, introduced by a single
// detail header at the outermost level.
func Pretty(w io.Writer, ufe lucid.UserFacingError, opts PrettyOpts) {
	writePretty(w, ufe, state{opts: opts, firstRun: true})
}

func writePretty(w io.Writer, ufe lucid.UserFacingError, st state) {
	fmt.Fprintln(w, ufe.Cause.Summary)

	if ufe.Cause.ExtendedReason != "" {
		fmt.Fprintf(w, "\n%s\n", ufe.Cause.ExtendedReason)
	}

	for _, fh := range ufe.Cause.Highlights {
		// A fresh generator per highlight keeps color assignment a pure
		// function of the label order.
		colors := annotate.NewColorGenerator()
		rep := annotate.New(annotate.KindError, fh.Path, fh.Content)
		for _, l := range fh.Labels {
			rep = rep.WithLabel(annotate.Label{
				Start:   l.Start,
				End:     l.End,
				Message: l.Message,
				Color:   colors.Next(),
			})
		}
		fmt.Fprint(w, rep.Render(annotate.Options{
			Width:   st.opts.Width,
			Context: st.opts.Context,
		}))
	}

	if len(ufe.Related) == 0 {
		return
	}
	if st.firstRun {
		fmt.Fprintln(w, detailHeader)
	}
	for _, rel := range ufe.Related {
		writePretty(w, rel, st.inner())
	}
}
