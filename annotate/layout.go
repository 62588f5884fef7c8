package annotate

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// block groups the labels that start on one source line, so a line shared by
// consecutive labels is printed once with stacked caret rows.
type block struct {
	line   int // 1-based labeled line
	from   int // first printed line, including context
	to     int // last printed line
	labels []Label
}

func layout(r Report, opts Options) string {
	ix := newLineIndex(r.content)
	var b strings.Builder

	kind := kindColor(r.kind).Sprint(r.kind.String())
	if len(r.labels) == 0 {
		fmt.Fprintf(&b, "%s: %s\n", r.path, kind)
		return b.String()
	}

	line, col := ix.locate(ix.clampOffset(r.labels[0].Start))
	fmt.Fprintf(&b, "%s:%d:%d: %s\n", r.path, line, col, kind)

	blocks := buildBlocks(r.labels, ix, opts.Context)

	gutter := 1
	for _, blk := range blocks {
		if w := len(fmt.Sprintf("%d", blk.to)); w > gutter {
			gutter = w
		}
	}

	for i, blk := range blocks {
		if i > 0 && !adjacent(blocks[i-1], blk) {
			b.WriteString("...\n")
		}
		writeBlock(&b, ix, blk, gutter, opts.Width)
	}
	return b.String()
}

func buildBlocks(labels []Label, ix *lineIndex, context int) []block {
	var blocks []block
	for _, l := range labels {
		line, _ := ix.locate(ix.clampOffset(l.Start))
		if n := len(blocks); n > 0 && blocks[n-1].line == line {
			blocks[n-1].labels = append(blocks[n-1].labels, l)
			continue
		}
		from := line - context
		if from < 1 {
			from = 1
		}
		to := line + context
		if last := ix.lineCount(); to > last {
			to = last
		}
		blocks = append(blocks, block{line: line, from: from, to: to, labels: []Label{l}})
	}
	return blocks
}

func adjacent(prev, next block) bool {
	return next.from >= prev.from && next.from <= prev.to+1
}

func writeBlock(b *strings.Builder, ix *lineIndex, blk block, gutter, width int) {
	for ln := blk.from; ln <= blk.to; ln++ {
		text := expandTabs(ix.lineText(ln))
		if avail := width - gutter - 3; width > 0 && avail > 0 {
			text = runewidth.Truncate(text, avail, "…")
		}
		fmt.Fprintf(b, "%*d | %s\n", gutter, ln, text)
		if ln != blk.line {
			continue
		}
		for _, l := range blk.labels {
			writeCaretRow(b, ix, blk.line, l, gutter, width)
		}
	}
}

// writeCaretRow draws "^~~~ message" under the labeled span, aligned by
// display width so tabs and wide runes do not skew the caret.
func writeCaretRow(b *strings.Builder, ix *lineIndex, line int, l Label, gutter, width int) {
	lineStart, lineEnd := ix.lineSpan(line)
	start := ix.clampOffset(l.Start)
	if start < lineStart {
		start = lineStart
	}
	if start > lineEnd {
		start = lineEnd
	}
	end := ix.clampOffset(l.End)
	if end > lineEnd {
		// Multi-line labels underline their first line only.
		end = lineEnd
	}
	if end < start {
		end = start
	}

	prefix := runewidth.StringWidth(expandTabs(ix.content[lineStart:start]))
	span := runewidth.StringWidth(expandTabs(ix.content[start:end]))
	if span < 1 {
		span = 1
	}
	if avail := width - gutter - 3; width > 0 && avail > 0 {
		if prefix >= avail {
			prefix = avail - 1
			span = 1
		}
		if prefix+span > avail {
			span = avail - prefix
		}
	}

	note := "^" + strings.Repeat("~", span-1)
	if l.Message != "" {
		note += " " + l.Message
	}
	if l.Color != nil {
		note = l.Color.Sprint(note)
	}
	fmt.Fprintf(b, "%*s | %s%s\n", gutter, "", strings.Repeat(" ", prefix), note)
}

// expandTabs keeps caret columns aligned with printed text: tabs render as
// four spaces in both the source line and the width math for its carets.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
