package annotate

import (
	"math"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// lineIndex resolves byte offsets of a content snapshot to line and column
// positions. Offsets index the content as captured; nothing is normalized.
type lineIndex struct {
	content string
	size    uint32   // indexable content length, saturated at 4 GiB
	starts  []uint32 // byte offset of the first byte of each line
}

func newLineIndex(content string) *lineIndex {
	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		// Content past 4 GiB is left unindexed; labels there clamp to
		// the last indexed position.
		size = math.MaxUint32
	}
	starts := make([]uint32, 1, 32)
	for i := 0; i < len(content) && i < math.MaxUint32; i++ {
		if content[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return &lineIndex{content: content, size: size, starts: starts}
}

// clampOffset converts a caller-supplied byte offset to a valid index into
// the content. Negative and oversized values saturate.
func (ix *lineIndex) clampOffset(off int) uint32 {
	u, err := safecast.Conv[uint32](off)
	if err != nil {
		if off < 0 {
			return 0
		}
		return ix.size
	}
	if u > ix.size {
		return ix.size
	}
	return u
}

func (ix *lineIndex) lineCount() int {
	return len(ix.starts)
}

// locate returns the 1-based line and byte column of the given offset.
func (ix *lineIndex) locate(off uint32) (line, col int) {
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > off
	})
	line = i // starts[i-1] <= off, so off sits on line i (1-based)
	if line < 1 {
		line = 1
	}
	col = int(off-ix.starts[line-1]) + 1
	return line, col
}

// lineSpan returns the byte range [start, end) of a 1-based line, excluding
// the trailing newline.
func (ix *lineIndex) lineSpan(line int) (start, end uint32) {
	if line < 1 || line > len(ix.starts) {
		return 0, 0
	}
	start = ix.starts[line-1]
	if line < len(ix.starts) {
		end = ix.starts[line] - 1
	} else {
		end = ix.size
	}
	return start, end
}

// lineText returns the display text of a 1-based line, without the trailing
// newline and without a trailing carriage return.
func (ix *lineIndex) lineText(line int) string {
	start, end := ix.lineSpan(line)
	return strings.TrimSuffix(ix.content[start:end], "\r")
}
