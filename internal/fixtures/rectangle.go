package fixtures

import (
	"strings"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Rect is a generated rectangular loop and everything known about it.
type Rect struct {
	Text       string
	Perimeter  int
	Enclosed   int
	Start      pipegrid.Position
	StartShape pipegrid.Shape     // real shape hidden under the start marker
	Ring       []pipegrid.Position // perimeter cells clockwise from the top-left corner
}

// Rectangle draws a w×h loop (w, h ≥ 2) inside margin cells of ground on
// every side, and replaces the ring cell at index start (mod perimeter,
// clockwise from the top-left corner) with the start marker.
//
// When padded is true and margin ≥ 1, a second ring of unconnected pipe
// is drawn one cell outside the loop. It never joins the loop and adds no
// enclosed cells.
func Rectangle(w, h, margin, start int, padded bool) Rect {
	W, H := w+2*margin, h+2*margin
	rows := make([][]byte, H)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", W))
	}
	if padded && margin >= 1 {
		drawRing(rows, margin-1, margin-1, w+2, h+2)
	}
	ring := drawRing(rows, margin, margin, w, h)

	idx := ((start % len(ring)) + len(ring)) % len(ring)
	sp := ring[idx]
	shape := pipegrid.CellOf(rows[sp.Y][sp.X]).Shape
	rows[sp.Y][sp.X] = pipegrid.StartChar

	lines := make([]string, H)
	for y, r := range rows {
		lines[y] = string(r)
	}

	return Rect{
		Text:       strings.Join(lines, "\n"),
		Perimeter:  len(ring),
		Enclosed:   (w - 2) * (h - 2),
		Start:      sp,
		StartShape: shape,
		Ring:       ring,
	}
}

// drawRing writes a w×h ring of pipe with its top-left corner at (x0, y0)
// and returns the ring cells clockwise from that corner.
func drawRing(rows [][]byte, x0, y0, w, h int) []pipegrid.Position {
	x1, y1 := x0+w-1, y0+h-1
	ring := make([]pipegrid.Position, 0, 2*w+2*h-4)

	for x := x0; x <= x1; x++ {
		ring = append(ring, pipegrid.Position{X: x, Y: y0})
		rows[y0][x] = '-'
	}
	for y := y0 + 1; y <= y1; y++ {
		ring = append(ring, pipegrid.Position{X: x1, Y: y})
		rows[y][x1] = '|'
	}
	for x := x1 - 1; x >= x0; x-- {
		ring = append(ring, pipegrid.Position{X: x, Y: y1})
		rows[y1][x] = '-'
	}
	for y := y1 - 1; y > y0; y-- {
		ring = append(ring, pipegrid.Position{X: x0, Y: y})
		rows[y][x0] = '|'
	}
	rows[y0][x0], rows[y0][x1] = 'F', '7'
	rows[y1][x0], rows[y1][x1] = 'L', 'J'

	return ring
}
