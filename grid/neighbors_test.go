package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// TestNeighbors_Order verifies the fixed up/down/left/right order.
func TestNeighbors_Order(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	got := g.Neighbors(grid.Coord{Row: 1, Col: 1}, false)
	want := []grid.Coord{
		{Row: 0, Col: 1}, // up
		{Row: 2, Col: 1}, // down
		{Row: 1, Col: 0}, // left
		{Row: 1, Col: 2}, // right
	}
	if len(got) != len(want) {
		t.Fatalf("neighbor count = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestNeighbors_Bounds verifies corners and edges drop out-of-bounds cells.
func TestNeighbors_Bounds(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	cases := []struct {
		name string
		c    grid.Coord
		want int
	}{
		{"TopLeftCorner", grid.Coord{Row: 0, Col: 0}, 2},
		{"BottomRightCorner", grid.Coord{Row: 2, Col: 2}, 2},
		{"TopEdge", grid.Coord{Row: 0, Col: 1}, 3},
		{"Center", grid.Coord{Row: 1, Col: 1}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Neighbors(tc.c, false); len(got) != tc.want {
				t.Errorf("Neighbors(%v) count = %d; want %d", tc.c, len(got), tc.want)
			}
		})
	}
}

// TestNeighbors_ExcludeVisited verifies the visited filter; walls are not
// filtered here.
func TestNeighbors_ExcludeVisited(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	g.At(0, 1).Visited = true
	g.SetWall(2, 1, true)

	got := g.Neighbors(grid.Coord{Row: 1, Col: 1}, true)
	want := []grid.Coord{
		{Row: 2, Col: 1}, // down: wall, but walls pass through the resolver
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("neighbor count = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestManhattanTo spot-checks the heuristic metric.
func TestManhattanTo(t *testing.T) {
	cases := []struct {
		a, b grid.Coord
		want int64
	}{
		{grid.Coord{}, grid.Coord{}, 0},
		{grid.Coord{}, grid.Coord{Row: 4, Col: 4}, 8},
		{grid.Coord{Row: 3, Col: 1}, grid.Coord{Row: 0, Col: 5}, 7},
		{grid.Coord{Row: 5, Col: 5}, grid.Coord{Row: 2, Col: 7}, 5},
	}
	for _, tc := range cases {
		if got := tc.a.ManhattanTo(tc.b); got != tc.want {
			t.Errorf("ManhattanTo(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.ManhattanTo(tc.a); got != tc.want {
			t.Errorf("ManhattanTo is not symmetric for %v,%v", tc.a, tc.b)
		}
	}
}
