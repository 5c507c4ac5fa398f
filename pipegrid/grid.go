package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 1 << 20

// Parse builds a Grid from text, one line per row and one byte per cell.
// A trailing newline, trailing blank lines and CRLF endings are tolerated.
// Returns ErrEmptyGrid if there are no cells, ErrNonRectangular if any row
// length differs from the first.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: read input: %w", err)
	}
	// drop trailing blank lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return FromLines(lines)
}

// FromLines builds a Grid from pre-split rows.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	cells := make([][]Cell, h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(line), w)
		}
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			row[x] = CellOf(line[x])
		}
		cells[y] = row
	}

	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Signed comparisons keep row and column 0 safe.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid) At(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
	}
	return g.Cells[p.Y][p.X], nil
}

// Neighbors returns the in-bounds cardinal neighbors of p, each paired
// with the direction from p, in the fixed order North, East, South, West.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Neighbor {
	out := make([]Neighbor, 0, 4)
	for _, d := range Directions {
		q := p.Step(d)
		if !g.InBounds(q) {
			continue
		}
		out = append(out, Neighbor{Pos: q, Dir: d})
	}
	return out
}

// Connected returns the neighbors of p that hold a pipe joined to the
// pipe at p, in the same N, E, S, W order as Neighbors.
// An Empty or out-of-bounds p has no connected neighbors.
func (g *Grid) Connected(p Position) []Neighbor {
	c, err := g.At(p)
	if err != nil || !c.IsPipe() {
		return nil
	}
	var out []Neighbor
	for _, n := range g.Neighbors(p) {
		nc := g.Cells[n.Pos.Y][n.Pos.X]
		if nc.IsPipe() && Connects(c.Shape, nc.Shape, n.Dir) {
			out = append(out, n)
		}
	}
	return out
}

// FindStart scans row-major and returns the first start cell.
// The boolean is false when the grid has no start marker.
// Complexity: O(W×H).
func (g *Grid) FindStart() (Position, bool) {
	for y, row := range g.Cells {
		for x, c := range row {
			if c.IsStart() {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// String renders the grid back to its source text, rows joined by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y, row := range g.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteByte(c.Char)
		}
	}
	return sb.String()
}
