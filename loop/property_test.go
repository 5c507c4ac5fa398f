package loop_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// TestRectangleProperties traces generated rectangular loops with the
// start marker dropped on an arbitrary ring cell.
func TestRectangleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	trace := func(r fixtures.Rect) (loop.Loop, bool) {
		g, err := pipegrid.Parse(r.Text)
		if err != nil {
			return nil, false
		}
		l, err := loop.Trace(g)
		return l, err == nil
	}

	// Property 1: perimeter equals the ring length, farthest is half of it
	properties.Property("perimeter and farthest", prop.ForAll(
		func(w, h, margin, start int, padded bool) bool {
			r := fixtures.Rectangle(w, h, margin, start, padded)
			l, ok := trace(r)
			return ok && l.Perimeter() == r.Perimeter && l.Farthest() == r.Perimeter/2
		},
		gen.IntRange(2, 12), gen.IntRange(2, 12), gen.IntRange(0, 2), gen.IntRange(0, 60), gen.Bool(),
	))

	// Property 2: the loop is a closed chain of unit steps with no repeats
	properties.Property("loop is a simple closed chain", prop.ForAll(
		func(w, h, start int) bool {
			r := fixtures.Rectangle(w, h, 1, start, true)
			l, ok := trace(r)
			if !ok || len(l.Set()) != len(l) {
				return false
			}
			for i, p := range l {
				q := l[(i+1)%len(l)]
				if abs(p.X-q.X)+abs(p.Y-q.Y) != 1 {
					return false
				}
			}
			return l[0] == r.Start
		},
		gen.IntRange(2, 10), gen.IntRange(2, 10), gen.IntRange(0, 40),
	))

	// Property 3: the resolved start shape is the pipe the marker hides
	properties.Property("start shape resolves to the hidden pipe", prop.ForAll(
		func(w, h, start int) bool {
			r := fixtures.Rectangle(w, h, 0, start, false)
			l, ok := trace(r)
			if !ok {
				return false
			}
			got, err := loop.ResolveStart(l)
			return err == nil && got == r.StartShape
		},
		gen.IntRange(2, 10), gen.IntRange(2, 10), gen.IntRange(0, 40),
	))

	// Property 4: BFS distance and Pick's theorem agree with the walk
	properties.Property("distances and area agree", prop.ForAll(
		func(w, h, start int) bool {
			r := fixtures.Rectangle(w, h, 1, start, false)
			g, err := pipegrid.Parse(r.Text)
			if err != nil {
				return false
			}
			l, err := loop.Trace(g)
			if err != nil {
				return false
			}
			depth, err := loop.Distances(g)
			if err != nil {
				return false
			}
			return loop.MaxDistance(depth) == l.Farthest() &&
				l.Area()-l.Perimeter()/2+1 == r.Enclosed
		},
		gen.IntRange(2, 10), gen.IntRange(2, 10), gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
