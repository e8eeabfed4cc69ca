// Package dijkstra defines configuration options and sentinel errors for
// the uniform-cost search engine over a gridpath grid.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNodeNotFound indicates the source or target coordinate lies
	// outside the grid.
	ErrNodeNotFound = errors.New("dijkstra: node not found in grid")

	// ErrWallEndpoint indicates the source or target node is a wall.
	ErrWallEndpoint = errors.New("dijkstra: endpoint node is a wall")
)

// VisitFunc observes one node finalization: the coordinate just popped and
// its final distance from the source. Returning an error aborts the search.
type VisitFunc func(c grid.Coord, dist int64) error

// Options holds tunable parameters for a single Search run.
type Options struct {
	// Ctx allows cancellation; checked once per finalization.
	Ctx context.Context

	// OnVisit is invoked for every finalized node, in finalize order.
	// An animating caller renders from this hook; a synchronous caller
	// leaves the default no-op and reads Result.Order instead. Both shapes
	// produce identical results.
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

// Result holds the outcome of one Search run.
//
// Order is the exact finalize order — a permutation prefix of the non-wall
// nodes reachable from the source — suitable for animating visited state.
// Found reports whether the target was finalized; when false, Order covers
// exactly the reachable component and the target's Visited flag stays false.
type Result struct {
	Order []grid.Coord
	Found bool
}
