// Package dijkstra_test contains unit tests for the uniform-cost engine:
// validation, finalize order, shortest paths, unreachable targets, hooks,
// cancellation, and determinism.
package dijkstra_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

func open5x5(t *testing.T, walls ...grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(5, 5, grid.Coord{}, grid.Coord{Row: 4, Col: 4}, grid.WithWalls(walls...))
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	return g
}

// assertValidPath checks a reconstructed path starts and ends where it
// should, steps only between 4-adjacent cells, and never crosses a wall.
func assertValidPath(t *testing.T, g *grid.Grid, path []grid.Coord, start, end grid.Coord) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Fatalf("path endpoints %v..%v; want %v..%v", path[0], path[len(path)-1], start, end)
	}
	for i, c := range path {
		if g.At(c.Row, c.Col).Wall {
			t.Fatalf("path crosses wall at %v", c)
		}
		if i > 0 && path[i-1].ManhattanTo(c) != 1 {
			t.Fatalf("path step %v→%v is not 4-adjacent", path[i-1], c)
		}
	}
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestSearch_NilGrid(t *testing.T) {
	_, err := dijkstra.Search(nil, grid.Coord{}, grid.Coord{})
	if !errors.Is(err, dijkstra.ErrNilGrid) {
		t.Fatalf("error = %v; want ErrNilGrid", err)
	}
}

func TestSearch_NodeNotFound(t *testing.T) {
	g := open5x5(t)
	_, err := dijkstra.Search(g, grid.Coord{}, grid.Coord{Row: 7, Col: 7})
	if !errors.Is(err, dijkstra.ErrNodeNotFound) {
		t.Fatalf("error = %v; want ErrNodeNotFound", err)
	}
}

func TestSearch_WallEndpoint(t *testing.T) {
	g := open5x5(t, grid.Coord{Row: 2, Col: 2})
	_, err := dijkstra.Search(g, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	if !errors.Is(err, dijkstra.ErrWallEndpoint) {
		t.Fatalf("error = %v; want ErrWallEndpoint", err)
	}
}

func TestSearch_BusyGrid(t *testing.T) {
	g := open5x5(t)
	if err := g.Acquire(); err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	defer g.Release()
	_, err := dijkstra.Search(g, g.Start(), g.End())
	if !errors.Is(err, grid.ErrBusy) {
		t.Fatalf("error = %v; want grid.ErrBusy", err)
	}
}

//----------------------------------------------------------------------------//
// Core behavior
//----------------------------------------------------------------------------//

// TestSearch_Open5x5 pins down the classic expansion on an open grid: every
// node at distance ≤7 is finalized before the corner target, so the visited
// order covers all 25 nodes and the path has 9 nodes (8 unit edges).
func TestSearch_Open5x5(t *testing.T) {
	g := open5x5(t)
	res, err := dijkstra.Search(g, g.Start(), g.End())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("target not found on an open grid")
	}
	if len(res.Order) != 25 {
		t.Errorf("visited order length = %d; want 25", len(res.Order))
	}
	// The finalize order is non-decreasing in distance (BFS rings).
	last := int64(0)
	for _, c := range res.Order {
		d := g.At(c.Row, c.Col).Distance
		if d < last {
			t.Fatalf("finalize order regressed: distance %d after %d at %v", d, last, c)
		}
		last = d
	}
	if got := g.At(4, 4).Distance; got != 8 {
		t.Errorf("end distance = %d; want 8", got)
	}
	path, err := g.PathTo(g.End())
	if err != nil {
		t.Fatalf("PathTo error: %v", err)
	}
	if len(path) != 9 {
		t.Errorf("path length = %d; want 9", len(path))
	}
	assertValidPath(t, g, path, g.Start(), g.End())
}

// TestSearch_TrivialEqualEndpoints verifies a source equal to target is a
// one-node run, not an error.
func TestSearch_TrivialEqualEndpoints(t *testing.T) {
	g := open5x5(t)
	src := grid.Coord{Row: 2, Col: 1}
	res, err := dijkstra.Search(g, src, src)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || len(res.Order) != 1 || res.Order[0] != src {
		t.Fatalf("trivial run = %+v; want Found with single-node order", res)
	}
	path, err := g.PathTo(src)
	if err != nil || len(path) != 1 {
		t.Fatalf("trivial path = %v, %v; want single node", path, err)
	}
}

// TestSearch_UnreachableTarget encloses the corner and verifies the partial
// finalize order covers exactly the reachable component.
func TestSearch_UnreachableTarget(t *testing.T) {
	g := open5x5(t, grid.Coord{Row: 3, Col: 4}, grid.Coord{Row: 4, Col: 3})
	res, err := dijkstra.Search(g, g.Start(), g.End())
	if err != nil {
		t.Fatal(err)
	}
	if res.Found {
		t.Fatal("Found = true for an enclosed target")
	}
	if g.At(4, 4).Visited {
		t.Error("enclosed target must stay unvisited")
	}
	// 25 nodes minus 2 walls minus the enclosed target.
	if len(res.Order) != 22 {
		t.Errorf("visited order length = %d; want 22", len(res.Order))
	}
	if _, err := g.PathTo(g.End()); !errors.Is(err, grid.ErrUnreachable) {
		t.Errorf("PathTo error = %v; want grid.ErrUnreachable", err)
	}
}

// TestSearch_WallsNeverVisited verifies walls are skipped entirely.
func TestSearch_WallsNeverVisited(t *testing.T) {
	walls := []grid.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 3}, {Row: 3, Col: 0}}
	g := open5x5(t, walls...)
	res, err := dijkstra.Search(g, g.Start(), g.End())
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range walls {
		if g.At(w.Row, w.Col).Visited {
			t.Errorf("wall %v was visited", w)
		}
		for _, c := range res.Order {
			if c == w {
				t.Errorf("wall %v appears in finalize order", w)
			}
		}
	}
}

// TestSearch_Idempotent verifies two runs on an unmodified grid produce
// identical orders and paths.
func TestSearch_Idempotent(t *testing.T) {
	g := open5x5(t, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 2}, grid.Coord{Row: 3, Col: 3})
	first, err := dijkstra.Search(g, g.Start(), g.End())
	if err != nil {
		t.Fatal(err)
	}
	firstPath, err := g.PathTo(g.End())
	if err != nil {
		t.Fatal(err)
	}
	second, err := dijkstra.Search(g, g.Start(), g.End())
	if err != nil {
		t.Fatal(err)
	}
	secondPath, err := g.PathTo(g.End())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Order, second.Order) {
		t.Error("finalize orders differ between identical runs")
	}
	if !reflect.DeepEqual(firstPath, secondPath) {
		t.Error("paths differ between identical runs")
	}
}

//----------------------------------------------------------------------------//
// Hooks & cancellation
//----------------------------------------------------------------------------//

// TestSearch_OnVisitOrder verifies the hook stream equals Result.Order, so
// the incremental and synchronous call shapes agree.
func TestSearch_OnVisitOrder(t *testing.T) {
	g := open5x5(t)
	var seen []grid.Coord
	res, err := dijkstra.Search(g, g.Start(), g.End(),
		dijkstra.WithOnVisit(func(c grid.Coord, _ int64) error {
			seen = append(seen, c)
			return nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seen, res.Order) {
		t.Error("OnVisit stream differs from Result.Order")
	}
}

// TestSearch_OnVisitAbort verifies a hook error aborts and propagates.
func TestSearch_OnVisitAbort(t *testing.T) {
	g := open5x5(t)
	boom := errors.New("stop here")
	res, err := dijkstra.Search(g, g.Start(), g.End(),
		dijkstra.WithOnVisit(func(grid.Coord, int64) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v; want wrapped hook error", err)
	}
	if len(res.Order) != 1 {
		t.Errorf("aborted after %d finalizations; want 1", len(res.Order))
	}
	// The grid must be usable again: the busy guard was released.
	if _, err := dijkstra.Search(g, g.Start(), g.End()); err != nil {
		t.Fatalf("re-run after abort error: %v", err)
	}
}

// TestSearch_ContextCancelled verifies a cancelled context stops the run.
func TestSearch_ContextCancelled(t *testing.T) {
	g := open5x5(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Search(g, g.Start(), g.End(), dijkstra.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v; want context.Canceled", err)
	}
}
