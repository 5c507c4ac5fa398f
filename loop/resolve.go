package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ResolveStart infers the real shape of the start cell: the two
// directions from l[0] toward its successor l[1] and its predecessor
// l[len-1]. The start marker itself opens every way, so callers that care
// about its actual geometry (the interior scan) use this instead.
// Returns ErrLoopTooShort for loops under four cells, ErrNotAdjacent if
// either neighbor is not one step away.
func ResolveStart(l Loop) (pipegrid.Shape, error) {
	return ShapeAt(l, 0)
}

// ShapeAt returns the shape the loop itself draws at index i: the
// directions toward l[i-1] and l[i+1], wrapping around the ends.
func ShapeAt(l Loop, i int) (pipegrid.Shape, error) {
	n := len(l)
	if n < 4 {
		return pipegrid.Shape{}, fmt.Errorf("%w: got %d", ErrLoopTooShort, n)
	}
	if i < 0 || i >= n {
		return pipegrid.Shape{}, fmt.Errorf("loop: index %d out of range [0,%d)", i, n)
	}
	out, err := directionTo(l[i], l[(i+1)%n])
	if err != nil {
		return pipegrid.Shape{}, err
	}
	back, err := directionTo(l[i], l[(i+n-1)%n])
	if err != nil {
		return pipegrid.Shape{}, err
	}

	return pipegrid.ShapeFrom(out, back), nil
}

// directionTo returns the direction leading from a to the adjacent b.
func directionTo(a, b pipegrid.Position) (pipegrid.Direction, error) {
	for _, d := range pipegrid.Directions {
		if a.Step(d) == b {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
}
