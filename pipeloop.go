package pipeloop

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Result is the outcome of a solve.
type Result struct {
	// Farthest is the step distance along the loop from the start to the
	// farthest loop cell.
	Farthest int
	// Enclosed is the number of cells strictly inside the loop.
	Enclosed int

	Grid       *pipegrid.Grid
	Loop       loop.Loop
	StartShape pipegrid.Shape
}

// Solve parses text and answers both questions about its loop.
func Solve(text string, opts ...Option) (*Result, error) {
	return SolveReader(strings.NewReader(text), opts...)
}

// SolveReader is Solve over an io.Reader.
// Errors from every stage are returned wrapped, so errors.Is matches the
// sentinels of pipegrid, loop and enclosure.
func SolveReader(r io.Reader, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.Logger

	g, err := pipegrid.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: parse: %w", err)
	}
	log.Debug("parsed grid", zap.Int("width", g.Width), zap.Int("height", g.Height))

	l, err := loop.Trace(g, loop.WithMaxSteps(o.MaxSteps))
	if err != nil {
		return nil, fmt.Errorf("pipeloop: trace: %w", err)
	}
	start, _ := l.Start()
	shape, err := loop.ResolveStart(l)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: resolve start: %w", err)
	}
	log.Debug("traced loop",
		zap.Stringer("start", start),
		zap.String("start_shape", string(shape.Char())),
		zap.Int("perimeter", l.Perimeter()))

	n, err := enclosure.Count(g, l, enclosure.WithStartPolicy(o.StartPolicy))
	if err != nil {
		return nil, fmt.Errorf("pipeloop: count: %w", err)
	}
	log.Debug("counted interior",
		zap.Stringer("policy", o.StartPolicy),
		zap.Int("enclosed", n))

	return &Result{
		Farthest:   l.Farthest(),
		Enclosed:   n,
		Grid:       g,
		Loop:       l,
		StartShape: shape,
	}, nil
}

// WriteTo writes the two answers as decimal integers, one per line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%d\n%d\n", r.Farthest, r.Enclosed)
	return int64(n), err
}
