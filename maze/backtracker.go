package maze

import "github.com/katalvlaran/gridpath/grid"

// RecursiveBacktracker generates a guaranteed-solvable maze with a
// randomized depth-first carve: rooms live on odd (row, col) coordinates,
// everything else starts as wall, and an iterative DFS tunnels between
// rooms two cells apart, knocking out the wall between them.
//
// Every room is reachable from every other room, and the protected zones
// around the special nodes always overlap the room lattice, so the start,
// end, and checkpoint stay mutually reachable.
//
// Grids smaller than 3×3 cannot host a room lattice and return no
// placements — a base case, not an error.
func RecursiveBacktracker(g *grid.Grid, opts ...Option) ([]grid.Coord, error) {
	p, err := begin(g, opts)
	if err != nil {
		return nil, err
	}
	defer g.Release()

	rows, cols := g.Rows(), g.Cols()
	if rows < 3 || cols < 3 {
		return p.order, nil
	}

	// Fill: every cell outside the room lattice becomes a wall. Rooms sit
	// at odd coordinates within [1, rows-2]×[1, cols-2]; odd cells on the
	// far edge of even-sized grids are walled too, so no open cell exists
	// outside the lattice.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r%2 == 0 || c%2 == 0 || r > rows-2 || c > cols-2 {
				p.place(r, c)
			}
		}
	}

	// Carve: iterative randomized DFS over the rooms.
	start := nearestRoom(g.Start(), rows, cols)
	visited := map[grid.Coord]bool{start: true}
	stack := []grid.Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next, ok := p.pickUnvisitedRoom(cur, visited)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		mid := grid.Coord{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
		g.SetWall(mid.Row, mid.Col, false)
		visited[next] = true
		stack = append(stack, next)
	}
	return p.compact(), nil
}

// pickUnvisitedRoom returns a random unvisited room two cells from cur.
func (p *placer) pickUnvisitedRoom(cur grid.Coord, visited map[grid.Coord]bool) (grid.Coord, bool) {
	candidates := make([]grid.Coord, 0, 4)
	for _, d := range cardinal {
		nb := grid.Coord{Row: cur.Row + 2*d[0], Col: cur.Col + 2*d[1]}
		if nb.Row < 1 || nb.Row > p.g.Rows()-2 || nb.Col < 1 || nb.Col > p.g.Cols()-2 {
			continue
		}
		if visited[nb] {
			continue
		}
		candidates = append(candidates, nb)
	}
	if len(candidates) == 0 {
		return grid.Coord{}, false
	}
	return candidates[p.rng.Intn(len(candidates))], true
}

// nearestRoom snaps a coordinate onto the odd-coordinate room lattice.
func nearestRoom(c grid.Coord, rows, cols int) grid.Coord {
	return grid.Coord{Row: oddClamp(c.Row, rows-2), Col: oddClamp(c.Col, cols-2)}
}

// oddClamp clamps x into [1, max] and rounds down to an odd value.
func oddClamp(x, max int) int {
	if x > max {
		x = max
	}
	if x%2 == 0 {
		x--
	}
	if x < 1 {
		x = 1
	}
	return x
}
