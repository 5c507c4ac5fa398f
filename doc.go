// Package pipeloop solves pipe-maze fields: a grid of pipe segments that
// holds exactly one closed loop through a start marker, plus noise.
//
// What is pipeloop?
//
//	A small, dependency-light toolkit that turns the text of a pipe field
//	into two numbers:
//		• Farthest: steps along the loop from the start to its far side
//		• Enclosed: grid cells strictly inside the loop
//
// Under the hood the work is split into packages that can be used on
// their own:
//
//	pipegrid/   cells, shapes, parsing and the connectivity rule
//	loop/       the directional walk, start-shape resolution, distances
//	enclosure/  the scan-line parity count of interior cells
//	render/     terminal rendering of a solved field
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// The loop has eight cells, so its far side is four steps away, and it
// encloses the single ground tile in the middle.
//
//	res, err := pipeloop.Solve(text)
//	fmt.Println(res.Farthest, res.Enclosed) // 4 1
package pipeloop
