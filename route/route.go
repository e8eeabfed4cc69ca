// Package route orchestrates one- and two-phase searches over a gridpath
// grid.
//
// Plan is a three-state machine:
//
//   - DirectSearch: no checkpoint on the grid — one start→end run.
//   - FirstPhase→SecondPhase: a checkpoint exists and is reachable — run
//     start→checkpoint, reset all search fields, run checkpoint→end, and
//     expose the two segments in order.
//   - Fallback: the checkpoint exists but the first phase never finalized
//     it — ignore the checkpoint and run start→end directly.
//
// The reset between phases is an explicit grid.ResetSearchFields call, so
// the cross-phase state handoff is a visible step rather than a side effect
// buried in an engine.
package route

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// searchFunc adapts one engine to a common shape for the orchestrator.
type searchFunc func(g *grid.Grid, source, target grid.Coord) (order []grid.Coord, found bool, err error)

// Plan runs the configured engine over g's current start, end, and
// optional checkpoint, returning the ordered segments for the caller to
// animate. Reachability must be checked via Result.Found (and per-segment
// nil paths); an unreachable end is not an error.
func Plan(g *grid.Grid, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	search, err := engineFor(cfg)
	if err != nil {
		return nil, err
	}

	start, end := g.Start(), g.End()
	cp, hasCP := g.Checkpoint()
	if !hasCP {
		return direct(g, search, start, end, nil)
	}

	firstOrder, foundCP, err := search(g, start, cp)
	if err != nil {
		return nil, err
	}
	if !foundCP {
		// Checkpoint boxed in: silently ignore it, but keep the failed
		// first-phase finalize order for presentation.
		failed := Segment{Phase: PhaseFirst, Visited: firstOrder}
		res, err := direct(g, search, start, end, []Segment{failed})
		if err != nil {
			return nil, err
		}
		res.Fallback = true
		return res, nil
	}

	firstPath, err := g.PathTo(cp)
	if err != nil {
		return nil, err
	}
	g.ResetSearchFields()

	secondOrder, foundEnd, err := search(g, cp, end)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Segments: []Segment{
			{Phase: PhaseFirst, Visited: firstOrder, Path: firstPath},
			{Phase: PhaseSecond, Visited: secondOrder},
		},
		Found: foundEnd,
	}
	if foundEnd {
		secondPath, err := g.PathTo(end)
		if err != nil {
			return nil, err
		}
		res.Segments[1].Path = secondPath
	}
	return res, nil
}

// direct runs a single start→end search and appends its segment to any
// segments already collected (the fallback's failed first phase).
func direct(g *grid.Grid, search searchFunc, start, end grid.Coord, prior []Segment) (*Result, error) {
	order, found, err := search(g, start, end)
	if err != nil {
		return nil, err
	}
	seg := Segment{Phase: PhaseDirect, Visited: order}
	if found {
		path, err := g.PathTo(end)
		if err != nil {
			return nil, err
		}
		seg.Path = path
	}
	return &Result{Segments: append(prior, seg), Found: found}, nil
}

// engineFor binds the configured algorithm and context to a searchFunc.
func engineFor(cfg Options) (searchFunc, error) {
	switch cfg.Algorithm {
	case Dijkstra:
		return func(g *grid.Grid, source, target grid.Coord) ([]grid.Coord, bool, error) {
			res, err := dijkstra.Search(g, source, target, dijkstra.WithContext(cfg.Ctx))
			if err != nil {
				return nil, false, err
			}
			return res.Order, res.Found, nil
		}, nil
	case AStar:
		return func(g *grid.Grid, source, target grid.Coord) ([]grid.Coord, bool, error) {
			res, err := astar.Search(g, source, target, astar.WithContext(cfg.Ctx))
			if err != nil {
				return nil, false, err
			}
			return res.Order, res.Found, nil
		}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
