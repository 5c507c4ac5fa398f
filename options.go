package pipeloop

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/enclosure"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pipeloop: invalid option supplied")

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunables of a solve.
type Options struct {
	// Logger receives debug records for each stage. Defaults to a no-op logger.
	Logger *zap.Logger

	// MaxSteps caps the loop walk; zero means the grid area.
	MaxSteps int

	// StartPolicy selects how the start marker takes part in the interior scan.
	StartPolicy enclosure.StartPolicy

	err error
}

// DefaultOptions returns Options with a no-op logger, the default step
// cap and the resolved start policy.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		MaxSteps:    0,
		StartPolicy: enclosure.StartResolved,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps caps the loop walk at n cells; n < 0 is invalid.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithStartPolicy selects the start marker policy for the interior scan.
// An unknown policy is invalid → ErrOptionViolation.
func WithStartPolicy(p enclosure.StartPolicy) Option {
	return func(o *Options) {
		if p != enclosure.StartResolved && p != enclosure.StartWildcard {
			o.err = fmt.Errorf("%w: unknown start policy %d", ErrOptionViolation, int(p))
			return
		}
		o.StartPolicy = p
	}
}
