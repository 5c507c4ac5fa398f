// Package pipegrid defines the core value types of a pipe field:
// directions, shapes, cells, positions and the Grid itself.
package pipegrid

import "fmt"

// Direction names one of the four cardinal neighbors.
// The iota order is the enumeration order used everywhere in this module.
type Direction int

const (
	// North is one row up (y-1).
	North Direction = iota
	// East is one column right (x+1).
	East
	// South is one row down (y+1).
	South
	// West is one column left (x-1).
	West
)

// Directions lists all four directions in enumeration order N, E, S, W.
var Directions = [4]Direction{North, East, South, West}

// offsets holds the (dx, dy) step for each Direction, indexed by Direction.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the column and row step of d.
func (d Direction) Delta() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Shape is the connection profile of a pipe segment: which of the four
// neighbors the segment opens toward.
type Shape struct {
	N, E, S, W bool
}

// CellKind tags a Cell as Empty or Pipe.
type CellKind uint8

const (
	// Empty is ground with no pipe.
	Empty CellKind = iota
	// Pipe is a pipe segment; its Shape says where it connects.
	Pipe
)

// Cell is one grid square. Shape is meaningful only when Kind == Pipe.
// Char keeps the source character so the grid can be re-emitted verbatim.
type Cell struct {
	Kind  CellKind
	Shape Shape
	Char  byte
}

// IsPipe reports whether c holds a pipe segment.
func (c Cell) IsPipe() bool { return c.Kind == Pipe }

// IsStart reports whether c is the start marker.
func (c Cell) IsStart() bool { return c.Kind == Pipe && c.Shape.IsStart() }

// Position is a (column, row) coordinate. It is a plain value: two
// positions are equal iff their coordinates are, so it works as a map key.
type Position struct {
	X, Y int
}

// Step returns the position one cell away from p in direction d.
// The result may lie outside any grid; check with Grid.InBounds.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbor pairs an adjacent position with the direction taken to reach it.
type Neighbor struct {
	Pos Position
	Dir Direction
}

// Grid is an immutable rectangular field of cells, row-major with the
// origin at the top-left. Cells[y][x] holds the cell at column x, row y.
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}
