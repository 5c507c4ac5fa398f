// Package pipegrid models a rectangular field of pipe segments and the
// rule that decides whether two neighboring segments are joined.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell parsed from text, one byte per cell.
//   - Each Cell is either Empty or a Pipe carrying a four-flag Shape (N, E, S, W).
//   - Connects decides whether two shapes join across a Direction.
//   - Neighbors and Connected enumerate adjacent cells in the fixed order
//     North, East, South, West.
//
// Character table:
//
//	|  N,S        -  E,W
//	L  N,E        J  N,W
//	F  S,E        7  S,W
//	S  N,E,S,W (start marker)
//	.  and anything else: Empty
//
// Unknown characters are not an error: they parse as Empty, so malformed
// input degrades to "no pipe here".
//
// Complexity:
//
//   - Parse:      O(W×H) time and memory.
//   - FindStart:  O(W×H) time, O(1) memory.
//   - Neighbors:  O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or a zero-width first row.
//   - ErrNonRectangular: a row length differs from the first row.
//   - ErrNoStart: no start marker present (returned by callers of FindStart).
//   - ErrOutOfBounds: a position outside the grid was dereferenced.
package pipegrid
