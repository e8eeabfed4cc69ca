// Package astar implements A* search over a gridpath grid.
//
// A* has the same shape as the dijkstra engine with one change: the heap is
// keyed on TotalDistance = Distance + Heuristic, where Heuristic is the
// Manhattan distance to the target — admissible and consistent on a
// 4-connected unit-cost grid, so the first finalization of the target is
// optimal.
//
// Heuristics are recomputed for every node against the current call's
// target before any relaxation. A stale heuristic left over from a prior
// phase or target silently breaks optimality, which is why the recompute
// happens inside Search rather than being left to the caller.
//
// Ties between equal totals are broken toward the smaller heuristic (the
// deeper node), then by insertion sequence. On an open grid this walks a
// single staircase to the target instead of flooding equal-cost frontiers.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs A* on g from source to target. Validation order, busy
// guarding, in-place mutation of node fields and the trivial
// source==target case all match the dijkstra engine.
func Search(g *grid.Grid, source, target grid.Coord, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(source.Row, source.Col) || !g.InBounds(target.Row, target.Col) {
		return nil, ErrNodeNotFound
	}
	if g.At(source.Row, source.Col).Wall || g.At(target.Row, target.Col).Wall {
		return nil, ErrWallEndpoint
	}
	if err := g.Acquire(); err != nil {
		return nil, err
	}
	defer g.Release()

	g.ResetSearchFields()

	// Recompute heuristics against this call's target before anything else.
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			n := g.At(row, col)
			n.Heuristic = (grid.Coord{Row: row, Col: col}).ManhattanTo(target)
		}
	}
	src := g.At(source.Row, source.Col)
	src.Distance = 0
	src.TotalDistance = src.Heuristic

	r := &runner{
		g:       g,
		cfg:     cfg,
		target:  g.Index(target),
		res:     &Result{Order: make([]grid.Coord, 0, 16)},
		nextSeq: 1,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: g.Index(source), total: src.TotalDistance, heur: src.Heuristic})

	return r.res, r.process()
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	g       *grid.Grid
	cfg     Options
	target  int
	res     *Result
	pq      nodePQ
	nextSeq uint64
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.cfg.Ctx.Done():
			return r.cfg.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		c := r.g.CoordAt(item.idx)
		n := r.g.At(c.Row, c.Col)
		if n.Visited {
			continue // stale lazy-decrease-key entry
		}
		n.Visited = true

		r.res.Order = append(r.res.Order, c)
		if err := r.cfg.OnVisit(c, n.Distance); err != nil {
			return fmt.Errorf("astar: OnVisit error at (%d,%d): %w", c.Row, c.Col, err)
		}

		if item.idx == r.target {
			r.res.Found = true
			return nil
		}
		r.relax(c, n.Distance)
	}
	return nil
}

// relax mirrors the dijkstra relaxation, comparing and assigning
// TotalDistance instead of Distance.
func (r *runner) relax(c grid.Coord, dist int64) {
	curIdx := r.g.Index(c)
	for _, nb := range r.g.Neighbors(c, true) {
		node := r.g.At(nb.Row, nb.Col)
		if node.Wall {
			continue
		}
		newDist := dist + 1
		newTotal := newDist + node.Heuristic
		if newTotal >= node.TotalDistance {
			continue
		}
		node.Distance = newDist
		node.TotalDistance = newTotal
		node.Prev = curIdx
		heap.Push(&r.pq, &nodeItem{idx: r.g.Index(nb), total: newTotal, heur: node.Heuristic, seq: r.nextSeq})
		r.nextSeq++
	}
}

// nodeItem is one heap entry: arena index, candidate total, the node's
// heuristic for depth-favoring tie-breaks, and the push sequence.
type nodeItem struct {
	idx   int
	total int64
	heur  int64
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem ordered by total, then heuristic, then
// insertion sequence, under the same lazy-decrease-key strategy as the
// dijkstra engine.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].total != pq[j].total {
		return pq[i].total < pq[j].total
	}
	if pq[i].heur != pq[j].heur {
		return pq[i].heur < pq[j].heur
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
