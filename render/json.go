package render

import (
	"encoding/json"
	"io"

	"lucid"
)

// LabelJSON mirrors one highlight label.
type LabelJSON struct {
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
	Message   string `json:"message"`
}

// HighlightJSON mirrors one file highlight. Content is included only on
// request: snapshots can be large and consumers usually keep the path.
type HighlightJSON struct {
	Path    string      `json:"path"`
	Content string      `json:"content,omitempty"`
	Labels  []LabelJSON `json:"labels,omitempty"`
}

// ErrorJSON is the serialized form of one resolved error node.
type ErrorJSON struct {
	Summary        string          `json:"summary"`
	ExtendedReason string          `json:"extended_reason,omitempty"`
	Highlights     []HighlightJSON `json:"highlights,omitempty"`
	Related        []ErrorJSON     `json:"related,omitempty"`
}

// JSONOpts controls BuildOutput and JSON.
type JSONOpts struct {
	// IncludeContent embeds each highlight's captured file content.
	IncludeContent bool
	// MaxDepth drops related entries nested deeper than this; 0 keeps all.
	MaxDepth int
}

// BuildOutput converts the tree into its JSON form without serializing it.
func BuildOutput(ufe lucid.UserFacingError, opts JSONOpts) ErrorJSON {
	return buildError(ufe, opts, 1)
}

func buildError(ufe lucid.UserFacingError, opts JSONOpts, depth int) ErrorJSON {
	out := ErrorJSON{
		Summary:        ufe.Cause.Summary,
		ExtendedReason: ufe.Cause.ExtendedReason,
	}
	for _, fh := range ufe.Cause.Highlights {
		h := HighlightJSON{Path: fh.Path}
		if opts.IncludeContent {
			h.Content = fh.Content
		}
		for _, l := range fh.Labels {
			h.Labels = append(h.Labels, LabelJSON{
				StartByte: l.Start,
				EndByte:   l.End,
				Message:   l.Message,
			})
		}
		out.Highlights = append(out.Highlights, h)
	}
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return out
	}
	for _, rel := range ufe.Related {
		out.Related = append(out.Related, buildError(rel, opts, depth+1))
	}
	return out
}

// JSON writes the tree to w as indented JSON.
func JSON(w io.Writer, ufe lucid.UserFacingError, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildOutput(ufe, opts))
}
