package enclosure

import (
	"errors"
	"fmt"
)

var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("enclosure: grid is nil")
	// ErrEmptyLoop is returned when the loop has no cells.
	ErrEmptyLoop = errors.New("enclosure: loop is empty")
	// ErrLoopOutOfBounds is returned when a loop cell lies outside the grid.
	ErrLoopOutOfBounds = errors.New("enclosure: loop cell outside grid")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enclosure: invalid option supplied")
)

// StartPolicy selects how the start marker takes part in the parity scan.
type StartPolicy int

const (
	// StartResolved uses the two-way shape the loop draws at the start.
	StartResolved StartPolicy = iota
	// StartWildcard treats the all-open start marker as opening South.
	StartWildcard
)

// String implements fmt.Stringer.
func (p StartPolicy) String() string {
	switch p {
	case StartResolved:
		return "resolved"
	case StartWildcard:
		return "wildcard"
	}
	return fmt.Sprintf("StartPolicy(%d)", int(p))
}

// ParseStartPolicy maps "resolved" or "wildcard" to a StartPolicy.
func ParseStartPolicy(s string) (StartPolicy, error) {
	switch s {
	case "resolved", "":
		return StartResolved, nil
	case "wildcard":
		return StartWildcard, nil
	}
	return 0, fmt.Errorf("%w: unknown start policy %q", ErrOptionViolation, s)
}

// Option configures Count and Cells.
type Option func(*Options)

// Options holds tunables for the interior scan.
type Options struct {
	StartPolicy StartPolicy
	err         error
}

// DefaultOptions returns Options with StartResolved.
func DefaultOptions() Options {
	return Options{StartPolicy: StartResolved}
}

// WithStartPolicy selects the start marker policy.
func WithStartPolicy(p StartPolicy) Option {
	return func(o *Options) {
		if p != StartResolved && p != StartWildcard {
			o.err = fmt.Errorf("%w: unknown start policy %d", ErrOptionViolation, int(p))
			return
		}
		o.StartPolicy = p
	}
}
