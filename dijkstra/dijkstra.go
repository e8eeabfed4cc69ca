// Package dijkstra implements uniform-cost search (Dijkstra restricted to
// unit edge weights) over a gridpath grid.
//
// The engine processes nodes in order of increasing distance from the
// source using a min-heap, relaxing the four orthogonal neighbors of each
// finalized node. Walls are skipped entirely: never finalized, never
// relaxed through. The run stops the instant the target is finalized, or
// when the heap drains — the unreachable case, signaled by Result.Found
// and the target node's Visited flag staying false.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols — each node is finalized at most
//     once and each relaxation pushes at most one heap entry.
//   - Space: O(N) — bookkeeping lives on the grid nodes themselves; the
//     heap holds at most one live entry per relaxation under
//     “lazy-decrease-key”.
//
// Ties between equal distances are broken by insertion sequence (FIFO),
// which keeps repeated runs on an unmodified grid byte-for-byte identical.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs uniform-cost search on g from source to target. Search
// fields on every node are reset at entry, then mutated in place: Distance,
// Prev and Visited reflect the run after it returns. That shared state is
// intentional — PathTo reads it, and the orchestrator resets it between
// phases.
//
// Preconditions, validated in order:
//  1. g must be non-nil (ErrNilGrid).
//  2. source and target must be in bounds (ErrNodeNotFound).
//  3. Neither endpoint may be a wall (ErrWallEndpoint).
//  4. No other run may be active on g (grid.ErrBusy).
//
// A source equal to target is a trivial run: one finalized node, Found true.
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
	g.At(source.Row, source.Col).Distance = 0

	r := &runner{
		g:       g,
		cfg:     cfg,
		target:  g.Index(target),
		res:     &Result{Order: make([]grid.Coord, 0, 16)},
		nextSeq: 1,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: g.Index(source), dist: 0})

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

// process is the main loop: pop the minimum-distance node, finalize it,
// relax its neighbors, repeat until the target is finalized or the heap
// drains.
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
			return fmt.Errorf("dijkstra: OnVisit error at (%d,%d): %w", c.Row, c.Col, err)
		}

		if item.idx == r.target {
			r.res.Found = true
			return nil
		}
		r.relax(c, n.Distance)
	}
	return nil
}

// relax attempts to improve the distance of every non-finalized, non-wall
// neighbor of c. The strict < keeps equal-distance paths from churning
// predecessors, so tie resolution stays with insertion order.
func (r *runner) relax(c grid.Coord, dist int64) {
	curIdx := r.g.Index(c)
	for _, nb := range r.g.Neighbors(c, true) {
		node := r.g.At(nb.Row, nb.Col)
		if node.Wall {
			continue
		}
		newDist := dist + 1
		if newDist >= node.Distance {
			continue
		}
		node.Distance = newDist
		node.Prev = curIdx
		heap.Push(&r.pq, &nodeItem{idx: r.g.Index(nb), dist: newDist, seq: r.nextSeq})
		r.nextSeq++
	}
}

// nodeItem is one heap entry: a node's arena index, its candidate distance,
// and the push sequence used for FIFO tie-breaking.
type nodeItem struct {
	idx  int
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem under the lazy-decrease-key strategy:
// shorter candidates are pushed as new entries and stale ones are skipped
// on pop via the node's Visited flag.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
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
