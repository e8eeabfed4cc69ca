// Package astar defines configuration options and sentinel errors for the
// heuristic search engine over a gridpath grid.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNodeNotFound indicates the source or target coordinate lies
	// outside the grid.
	ErrNodeNotFound = errors.New("astar: node not found in grid")

	// ErrWallEndpoint indicates the source or target node is a wall.
	ErrWallEndpoint = errors.New("astar: endpoint node is a wall")
)

// VisitFunc observes one node finalization: the coordinate just popped and
// its final distance from the source. Returning an error aborts the search.
type VisitFunc func(c grid.Coord, dist int64) error

// Options holds tunable parameters for a single Search run.
type Options struct {
	// Ctx allows cancellation; checked once per finalization.
	Ctx context.Context

	// OnVisit is invoked for every finalized node, in finalize order.
	OnVisit VisitFunc
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Coord, int64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every node finalization.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one Search run: the exact finalize order and
// whether the target was finalized. Semantics match the dijkstra engine.
type Result struct {
	Order []grid.Coord
	Found bool
}
