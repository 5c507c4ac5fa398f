package pipegrid

// Predefined shapes for the pipe characters.
var (
	Vertical   = Shape{N: true, S: true}                   // |
	Horizontal = Shape{E: true, W: true}                   // -
	BendNE     = Shape{N: true, E: true}                   // L
	BendNW     = Shape{N: true, W: true}                   // J
	BendSE     = Shape{E: true, S: true}                   // F
	BendSW     = Shape{S: true, W: true}                   // 7
	StartShape = Shape{N: true, E: true, S: true, W: true} // S
)

// StartChar is the character marking the start cell.
const StartChar = 'S'

// shapeTable maps every pipe character to its shape.
// Characters missing from the table parse as Empty.
var shapeTable = map[byte]Shape{
	'|':       Vertical,
	'-':       Horizontal,
	'L':       BendNE,
	'J':       BendNW,
	'F':       BendSE,
	'7':       BendSW,
	StartChar: StartShape,
}

// CellOf converts a single input character into a Cell.
// Unrecognized characters yield an Empty cell that remembers the character.
func CellOf(ch byte) Cell {
	if s, ok := shapeTable[ch]; ok {
		return Cell{Kind: Pipe, Shape: s, Char: ch}
	}
	return Cell{Kind: Empty, Char: ch}
}

// ShapeFrom builds a shape open toward exactly the given directions.
func ShapeFrom(dirs ...Direction) Shape {
	var s Shape
	for _, d := range dirs {
		switch d {
		case North:
			s.N = true
		case East:
			s.E = true
		case South:
			s.S = true
		case West:
			s.W = true
		}
	}
	return s
}

// Has reports whether s opens toward d.
func (s Shape) Has(d Direction) bool {
	switch d {
	case North:
		return s.N
	case East:
		return s.E
	case South:
		return s.S
	case West:
		return s.W
	}
	return false
}

// IsStart reports whether s is the all-open start shape.
func (s Shape) IsStart() bool {
	return s.N && s.E && s.S && s.W
}

// Char returns the pipe character drawing s, or '?' when s is not one of
// the seven known shapes.
func (s Shape) Char() byte {
	for ch, shape := range shapeTable {
		if shape == s {
			return ch
		}
	}
	return '?'
}

// Connects reports whether a joins b, where dir is the direction traveled
// from a to reach b. Both ends must open toward each other, which makes
// the relation symmetric:
//
//	Connects(a, b, d) == Connects(b, a, d.Opposite())
//
// Complexity: O(1).
func Connects(a, b Shape, dir Direction) bool {
	return a.Has(dir) && b.Has(dir.Opposite())
}
