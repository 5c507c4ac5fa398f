// Package loop walks the single closed pipe loop that passes through the
// start marker of a pipegrid.Grid.
//
// What:
//
//   - Trace: follows connected pipes from the start, one cell at a time,
//     always taking the first unvisited connected neighbor in N, E, S, W
//     order, until the walk returns to the start.
//   - Loop: the ordered cells of the cycle; Farthest is half its length.
//   - ResolveStart: infers the real two-way shape hidden under the start
//     marker from the loop's first and last steps.
//   - Distances: breadth-first step counts from the start over the traced
//     loop only; the largest equals Loop.Farthest.
//   - Area: shoelace area of the polygon traced by the loop.
//
// Why:
//
//   - The fixed N, E, S, W order makes the walk direction deterministic.
//   - A bounded walk turns the non-terminating inputs of a naive tracer
//     (dangling pipes, no closure) into explicit errors.
//
// Complexity:
//
//   - Trace:     O(L) time, O(L) memory (L = loop length).
//   - Distances: O(W×H) for the trace it runs first, then O(L).
//
// Errors:
//
//   - ErrGridNil          grid pointer is nil
//   - ErrNoStart          grid has no start marker (wraps pipegrid.ErrNoStart)
//   - ErrDeadEnd          the walk reached a cell with nowhere left to go
//   - ErrStepLimit        the walk exceeded MaxSteps without closing
//   - ErrOptionViolation  an invalid Option was supplied
//   - ErrLoopTooShort     a loop of fewer than four cells was given
//   - hook errors         propagated from OnStep
package loop
