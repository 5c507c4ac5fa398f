// Package fixtures holds the reference pipe fields and a rectangle-loop
// generator shared by the tests of pipegrid, loop, enclosure and the CLI.
package fixtures

// Fixture is a pipe field with its known answers.
type Fixture struct {
	Name     string
	Text     string
	Farthest int
	Enclosed int
}

// Square is the smallest clean loop with a single ground tile inside the ring.
var Square = Fixture{
	Name: "Square",
	Text: `.....
.S-7.
.|.|.
.L-J.
.....`,
	Farthest: 4,
	Enclosed: 1,
}

// SquareNoise is Square surrounded by unconnected pipe noise.
var SquareNoise = Fixture{
	Name: "SquareNoise",
	Text: `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`,
	Farthest: 4,
	Enclosed: 1,
}

// Winding is the 5×5 field whose loop winds through the whole grid,
// pinching off a single ground tile at (2,2).
var Winding = Fixture{
	Name: "Winding",
	Text: `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`,
	Farthest: 8,
	Enclosed: 1,
}

// Channels has two interior pockets and a squeezed gap between pipes
// that stays outside.
var Channels = Fixture{
	Name: "Channels",
	Text: `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`,
	Farthest: 23,
	Enclosed: 4,
}

// Dense is a 10-row field with junk pipes outside the loop.
var Dense = Fixture{
	Name: "Dense",
	Text: `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`,
	Farthest: 70,
	Enclosed: 8,
}

// Junk is a 10-row field where junk pipes are enclosed by the loop.
var Junk = Fixture{
	Name: "Junk",
	Text: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`,
	Farthest: 80,
	Enclosed: 10,
}

// All lists every fixture.
var All = []Fixture{Square, SquareNoise, Winding, Channels, Dense, Junk}
