package pipeloop_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestSolve_Fixtures runs the whole pipeline over every reference field.
func TestSolve_Fixtures(t *testing.T) {
	for _, f := range fixtures.All {
		t.Run(f.Name, func(t *testing.T) {
			res, err := pipeloop.Solve(f.Text)
			require.NoError(t, err)
			assert.Equal(t, f.Farthest, res.Farthest)
			assert.Equal(t, f.Enclosed, res.Enclosed)
			assert.Equal(t, res.Loop.Perimeter()/2, res.Farthest)
		})
	}
}

// TestSolve_WriteTo checks the two-line output format.
func TestSolve_WriteTo(t *testing.T) {
	res, err := pipeloop.SolveReader(strings.NewReader(fixtures.Winding.Text))
	require.NoError(t, err)
	assert.Equal(t, pipegrid.BendSE, res.StartShape)

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "8\n1\n", buf.String())
	assert.Equal(t, int64(4), n)
}

// TestSolve_Errors verifies stage errors keep their sentinels.
func TestSolve_Errors(t *testing.T) {
	_, err := pipeloop.Solve("")
	assert.ErrorIs(t, err, pipegrid.ErrEmptyGrid)

	_, err = pipeloop.Solve("..\n...")
	assert.ErrorIs(t, err, pipegrid.ErrNonRectangular)

	_, err = pipeloop.Solve("F7\nLJ")
	assert.ErrorIs(t, err, pipegrid.ErrNoStart)

	_, err = pipeloop.Solve("S-7\n|.|\nL-.")
	assert.ErrorIs(t, err, loop.ErrDeadEnd)

	_, err = pipeloop.Solve(fixtures.Square.Text, pipeloop.WithMaxSteps(2))
	assert.ErrorIs(t, err, loop.ErrStepLimit)

	_, err = pipeloop.Solve(fixtures.Square.Text, pipeloop.WithMaxSteps(-2))
	assert.ErrorIs(t, err, pipeloop.ErrOptionViolation)

	_, err = pipeloop.Solve(fixtures.Square.Text, pipeloop.WithStartPolicy(enclosure.StartPolicy(9)))
	assert.ErrorIs(t, err, pipeloop.ErrOptionViolation)
	assert.NotErrorIs(t, err, enclosure.ErrOptionViolation)
}

// TestSolve_StartPolicy shows the wildcard policy miscounting a start
// that hides an L corner.
func TestSolve_StartPolicy(t *testing.T) {
	r := fixtures.Rectangle(4, 3, 1, 8, false)

	res, err := pipeloop.Solve(r.Text)
	require.NoError(t, err)
	assert.Equal(t, r.Enclosed, res.Enclosed)

	res, err = pipeloop.Solve(r.Text, pipeloop.WithStartPolicy(enclosure.StartWildcard))
	require.NoError(t, err)
	assert.Equal(t, r.Enclosed+1, res.Enclosed)
}

// TestSolve_Logging checks each stage leaves a debug record.
func TestSolve_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := pipeloop.Solve(fixtures.Square.Text, pipeloop.WithLogger(zap.New(core)))
	require.NoError(t, err)

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"parsed grid", "traced loop", "counted interior"}, msgs)

	traced := logs.FilterMessage("traced loop").All()
	require.Len(t, traced, 1)
	assert.Equal(t, int64(8), traced[0].ContextMap()["perimeter"])
	assert.Equal(t, "F", traced[0].ContextMap()["start_shape"])
	assert.Equal(t, "(1,1)", traced[0].ContextMap()["start"])
}
