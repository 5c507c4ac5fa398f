package enclosure

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Count returns the number of cells of g strictly enclosed by l.
// Returns ErrGridNil, ErrEmptyLoop, ErrLoopOutOfBounds, ErrOptionViolation,
// or a loop error when the start shape cannot be resolved.
func Count(g *pipegrid.Grid, l loop.Loop, opts ...Option) (int, error) {
	n := 0
	err := scan(g, l, opts, func(pipegrid.Position) { n++ })
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Cells returns the enclosed cells of g in row-major order.
func Cells(g *pipegrid.Grid, l loop.Loop, opts ...Option) ([]pipegrid.Position, error) {
	var out []pipegrid.Position
	err := scan(g, l, opts, func(p pipegrid.Position) { out = append(out, p) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ByArea counts the interior by Pick's theorem over the loop polygon,
// independent of the grid contents. It agrees with Count for every
// well-formed field.
func ByArea(l loop.Loop) int {
	if len(l) < 4 {
		return 0
	}
	return l.Area() - l.Perimeter()/2 + 1
}

// scan runs the parity sweep and calls emit for each enclosed cell.
func scan(g *pipegrid.Grid, l loop.Loop, opts []Option, emit func(pipegrid.Position)) error {
	if g == nil {
		return ErrGridNil
	}
	if len(l) == 0 {
		return ErrEmptyLoop
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	// 1) Membership mask, with the south flag each loop cell scans with
	onLoop := make([][]bool, g.Height)
	south := make([][]bool, g.Height)
	for y := range onLoop {
		onLoop[y] = make([]bool, g.Width)
		south[y] = make([]bool, g.Width)
	}
	for i, p := range l {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v in %dx%d grid", ErrLoopOutOfBounds, p, g.Width, g.Height)
		}
		shape := g.Cells[p.Y][p.X].Shape
		if shape.IsStart() && o.StartPolicy == StartResolved {
			resolved, err := loop.ShapeAt(l, i)
			if err != nil {
				return fmt.Errorf("enclosure: resolve start: %w", err)
			}
			shape = resolved
		}
		onLoop[p.Y][p.X] = true
		south[p.Y][p.X] = shape.S
	}

	// 2) Row sweep: loop cells opening South flip the parity
	for y := 0; y < g.Height; y++ {
		inside := false
		for x := 0; x < g.Width; x++ {
			if onLoop[y][x] {
				if south[y][x] {
					inside = !inside
				}
				continue
			}
			if inside {
				emit(pipegrid.Position{X: x, Y: y})
			}
		}
	}

	return nil
}
