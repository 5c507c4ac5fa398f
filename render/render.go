package render

import (
	"strings"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Glyphs used for cells.
const (
	InsideGlyph  = "I"
	OutsideGlyph = "."
	StartGlyph   = "S"
)

// boxGlyphs maps pipe characters to box-drawing runes.
var boxGlyphs = map[byte]string{
	'|': "│",
	'-': "─",
	'L': "└",
	'J': "┘",
	'F': "┌",
	'7': "┐",
}

// Glyph returns the box-drawing glyph for a pipe character, or the
// character itself when it is not a pipe.
func Glyph(ch byte) string {
	if s, ok := boxGlyphs[ch]; ok {
		return s
	}
	return string(ch)
}

// Grid draws g with l highlighted and the inside cells marked.
// Pipes that are not on the loop are drawn as ground: they are either
// inside or outside like any other cell. Rows are joined by '\n'.
func Grid(g *pipegrid.Grid, l loop.Loop, inside []pipegrid.Position, st Styles) string {
	onLoop := l.Set()
	in := make(map[pipegrid.Position]struct{}, len(inside))
	for _, p := range inside {
		in[p] = struct{}{}
	}

	var sb strings.Builder
	for y, row := range g.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			p := pipegrid.Position{X: x, Y: y}
			if _, ok := onLoop[p]; ok {
				if c.IsStart() {
					sb.WriteString(st.Start.Render(StartGlyph))
				} else {
					sb.WriteString(st.Loop.Render(Glyph(c.Char)))
				}
				continue
			}
			if _, ok := in[p]; ok {
				sb.WriteString(st.Inside.Render(InsideGlyph))
				continue
			}
			sb.WriteString(st.Outside.Render(OutsideGlyph))
		}
	}
	return sb.String()
}
