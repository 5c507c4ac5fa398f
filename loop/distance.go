package loop

import "github.com/katalvlaran/pipeloop/pipegrid"

// Distances runs a breadth-first search from the start marker along the
// loop and returns the step count to every loop cell. The loop is traced
// first, so noise pipes that happen to open into the start are never
// entered. The largest distance equals Loop.Farthest: the two walks
// around the cycle meet there.
// Returns any error of Trace.
//
// Time:   O(W·H) for the trace, O(L) for the search.
// Memory: O(L) for the queue and depth map.
func Distances(g *pipegrid.Grid, opts ...Option) (map[pipegrid.Position]int, error) {
	l, err := Trace(g, opts...)
	if err != nil {
		return nil, err
	}
	onLoop := l.Set()
	start := l[0]

	depth := map[pipegrid.Position]int{start: 0}
	queue := []pipegrid.Position{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range g.Connected(u) {
			if _, ok := onLoop[n.Pos]; !ok {
				continue
			}
			if _, seen := depth[n.Pos]; seen {
				continue
			}
			depth[n.Pos] = depth[u] + 1
			queue = append(queue, n.Pos)
		}
	}

	return depth, nil
}

// MaxDistance returns the largest value in a Distances result, or 0 for
// an empty map.
func MaxDistance(depth map[pipegrid.Position]int) int {
	best := 0
	for _, d := range depth {
		if d > best {
			best = d
		}
	}
	return best
}

// Area returns the area enclosed by the polygon whose vertices are the
// loop cell centers, by the shoelace formula. Together with Pick's theorem
// it gives an independent interior count: Area - Perimeter/2 + 1.
// Complexity: O(L).
func (l Loop) Area() int {
	if len(l) < 3 {
		return 0
	}
	sum := 0
	for i, p := range l {
		q := l[(i+1)%len(l)]
		sum += p.X*q.Y - q.X*p.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
