package annotate

import "github.com/fatih/color"

// palette holds the label colors handed out by ColorGenerator, in order.
// Foreground-only so they stay readable on both dark and light terminals.
var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// ColorGenerator assigns label colors in a fixed sequence, so the same
// report is colored the same way on every run. A fresh generator always
// starts at the beginning of the palette; adjacent labels get distinct
// colors until the palette wraps.
type ColorGenerator struct {
	next int
}

func NewColorGenerator() *ColorGenerator {
	return &ColorGenerator{}
}

// Next returns the next palette color, cycling once the palette is
// exhausted.
func (g *ColorGenerator) Next() *color.Color {
	c := palette[g.next%len(palette)]
	g.next++
	return c
}

func kindColor(k Kind) *color.Color {
	switch k {
	case KindWarning:
		return color.New(color.FgYellow, color.Bold)
	case KindNote:
		return color.New(color.FgCyan, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
