// Package enclosure counts the grid cells strictly inside a traced loop.
//
// The count is a left-to-right scan of each row with a parity flag. The
// flag starts false on every row and flips on each loop cell that opens
// South; runs like F----7 therefore flip exactly once per vertical
// boundary crossing. Any cell off the loop, ground or stray pipe alike,
// counts when the flag is set.
//
// The start marker opens every way, so whether it flips the flag depends
// on policy: StartResolved (default) uses the shape the loop draws there,
// StartWildcard treats the marker as opening South. The two only differ
// when the start's real shape has no South opening.
//
// Complexity: O(W×H) time, O(W×H) memory for the membership mask.
package enclosure
