package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates mutable tracing state.
type walker struct {
	grid    *pipegrid.Grid
	opts    Options
	start   pipegrid.Position
	limit   int
	visited map[pipegrid.Position]struct{}
	path    Loop
}

// Trace walks the cycle through the start marker of g and returns its
// cells in walking order, starting with the start itself.
//
// Steps:
//  1. Append the current cell.
//  2. Collect its connected neighbors in N, E, S, W order.
//  3. Move to the first one not yet visited.
//  4. If none is left and the start is among them, the loop is closed.
//
// The first move from the start takes the first connected direction in
// that same order. Returns ErrGridNil, ErrNoStart, ErrOptionViolation,
// ErrDeadEnd, ErrStepLimit or any OnStep hook error.
func Trace(g *pipegrid.Grid, opts ...Option) (Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := g.FindStart()
	if !ok {
		return nil, ErrNoStart
	}

	limit := o.MaxSteps
	if limit == 0 {
		limit = g.Width * g.Height
	}
	w := &walker{
		grid:    g,
		opts:    o,
		start:   start,
		limit:   limit,
		visited: make(map[pipegrid.Position]struct{}),
		path:    make(Loop, 0, 64),
	}

	return w.run()
}

// run drives the walk until it closes or fails.
func (w *walker) run() (Loop, error) {
	cur := w.start
	for {
		if len(w.path) >= w.limit {
			return nil, fmt.Errorf("%w: %d cells visited from %v", ErrStepLimit, w.limit, w.start)
		}
		w.path = append(w.path, cur)
		w.visited[cur] = struct{}{}
		if err := w.opts.OnStep(len(w.path)-1, cur); err != nil {
			return nil, err
		}

		next, closed, err := w.next(cur)
		if err != nil {
			return nil, err
		}
		if closed {
			return w.path, nil
		}
		cur = next
	}
}

// next picks the move out of cur. closed is true when the walk is back
// beside the start with nothing left to visit.
func (w *walker) next(cur pipegrid.Position) (next pipegrid.Position, closed bool, err error) {
	touchesStart := false
	for _, n := range w.grid.Connected(cur) {
		if n.Pos == w.start {
			touchesStart = true
			continue
		}
		if _, seen := w.visited[n.Pos]; !seen {
			return n.Pos, false, nil
		}
	}
	// a 2-cell back-and-forth is not a loop
	if touchesStart && len(w.path) > 2 {
		return pipegrid.Position{}, true, nil
	}

	return pipegrid.Position{}, false, fmt.Errorf("%w at %v after %d cells", ErrDeadEnd, cur, len(w.path))
}
