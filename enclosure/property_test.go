package enclosure_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// countRect traces and counts a generated rectangle.
func countRect(r fixtures.Rect) (int, loop.Loop, bool) {
	g, err := pipegrid.Parse(r.Text)
	if err != nil {
		return 0, nil, false
	}
	l, err := loop.Trace(g)
	if err != nil {
		return 0, nil, false
	}
	n, err := enclosure.Count(g, l)
	return n, l, err == nil
}

func TestEnclosureProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property 1: a rectangle encloses (w-2)(h-2) cells wherever the start sits
	properties.Property("rectangle interior", prop.ForAll(
		func(w, h, margin, start int) bool {
			r := fixtures.Rectangle(w, h, margin, start, false)
			n, l, ok := countRect(r)
			return ok && n == r.Enclosed && n == enclosure.ByArea(l)
		},
		gen.IntRange(2, 12), gen.IntRange(2, 12), gen.IntRange(0, 3), gen.IntRange(0, 60),
	))

	// Property 2: an outer redundant ring changes nothing
	properties.Property("padding is invisible", prop.ForAll(
		func(w, h, start int) bool {
			bare, _, ok1 := countRect(fixtures.Rectangle(w, h, 2, start, false))
			padded, _, ok2 := countRect(fixtures.Rectangle(w, h, 2, start, true))
			return ok1 && ok2 && bare == padded
		},
		gen.IntRange(2, 12), gen.IntRange(2, 12), gen.IntRange(0, 60),
	))

	// Property 3: enclosed cells are never loop cells
	properties.Property("cells avoid the loop", prop.ForAll(
		func(w, h, start int) bool {
			r := fixtures.Rectangle(w, h, 1, start, true)
			g, err := pipegrid.Parse(r.Text)
			if err != nil {
				return false
			}
			l, err := loop.Trace(g)
			if err != nil {
				return false
			}
			cells, err := enclosure.Cells(g, l)
			if err != nil || len(cells) != r.Enclosed {
				return false
			}
			set := l.Set()
			for _, p := range cells {
				if _, on := set[p]; on {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 10), gen.IntRange(2, 10), gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
