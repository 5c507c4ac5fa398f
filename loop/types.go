// Package loop defines the options, sentinel errors and Loop type used
// by the tracer.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrGridNil is returned when a nil grid is passed to Trace or Distances.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrNoStart indicates the grid has no start marker.
	ErrNoStart = fmt.Errorf("loop: %w", pipegrid.ErrNoStart)

	// ErrDeadEnd indicates the walk stopped at a cell with no unvisited
	// connected neighbor and no connection back to the start.
	ErrDeadEnd = errors.New("loop: walk reached a dead end")

	// ErrStepLimit indicates the walk visited more than MaxSteps cells.
	ErrStepLimit = errors.New("loop: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")

	// ErrLoopTooShort indicates a loop with fewer than four cells.
	ErrLoopTooShort = errors.New("loop: loop must have at least four cells")

	// ErrNotAdjacent indicates two consecutive loop cells are not neighbors.
	ErrNotAdjacent = errors.New("loop: consecutive cells are not adjacent")
)

// Option configures Trace via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Trace is invoked.
type Option func(*Options)

// Options holds tunables for Trace.
type Options struct {
	// MaxSteps caps the number of cells the walk may visit.
	// Zero means Width×Height of the grid being traced.
	MaxSteps int

	// OnStep, if set, is called with the 0-based step index and position
	// each time a cell is appended. Returning an error aborts the walk.
	OnStep func(step int, p pipegrid.Position) error

	err error
}

// DefaultOptions returns Options with no explicit step cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		OnStep:   func(int, pipegrid.Position) error { return nil },
	}
}

// WithMaxSteps caps the walk at n cells.
//
//	n > 0:  limit to n cells
//	n == 0: default limit (grid area)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep installs a hook called for every appended cell.
func WithOnStep(fn func(step int, p pipegrid.Position) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Loop is the ordered sequence of cells of the start cycle, beginning at
// the start. Consecutive cells are connected, and so are the last and
// the first. No cell appears twice.
type Loop []pipegrid.Position

// Perimeter returns the number of cells in the loop.
func (l Loop) Perimeter() int { return len(l) }

// Farthest returns the step distance, along the loop, from the start to
// the cell farthest from it: half the perimeter, rounded down.
func (l Loop) Farthest() int { return len(l) / 2 }

// Start returns the first cell of the loop.
// It returns false for an empty loop.
func (l Loop) Start() (pipegrid.Position, bool) {
	if len(l) == 0 {
		return pipegrid.Position{}, false
	}
	return l[0], true
}

// Contains reports whether p is one of the loop cells.
// Complexity: O(L); use Set for repeated lookups.
func (l Loop) Contains(p pipegrid.Position) bool {
	for _, q := range l {
		if q == p {
			return true
		}
	}
	return false
}

// Set returns the loop cells as a membership set.
func (l Loop) Set() map[pipegrid.Position]struct{} {
	set := make(map[pipegrid.Position]struct{}, len(l))
	for _, p := range l {
		set[p] = struct{}{}
	}
	return set
}
