package grid

// neighborOffsets is the fixed traversal order: up, down, left, right.
// The order never affects shortest-path correctness (engines relax with a
// strict <), but it decides which node wins ties, so it must stay stable.
var neighborOffsets = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Neighbors returns the 4-connected in-bounds neighbors of c in fixed
// up/down/left/right order. When excludeVisited is true, nodes already
// finalized by the running search are filtered out. Walls are not filtered
// here; engines skip them during relaxation.
func (g *Grid) Neighbors(c Coord, excludeVisited bool) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		nb := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !g.InBounds(nb.Row, nb.Col) {
			continue
		}
		if excludeVisited && g.At(nb.Row, nb.Col).Visited {
			continue
		}
		out = append(out, nb)
	}
	return out
}
