// Package route defines types, options, and sentinel errors for the
// two-phase search orchestrator.
package route

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Plan.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Plan.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value Plan does not know.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")
)

// Algorithm selects which search engine Plan drives.
type Algorithm int

const (
	// Dijkstra selects the uniform-cost engine.
	Dijkstra Algorithm = iota
	// AStar selects the heuristic engine.
	AStar
)

// String returns a human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Phase tags a segment for downstream presentation (e.g. alternate
// coloring). It carries no algorithmic meaning.
type Phase int

const (
	// PhaseDirect is the single segment of a start→end run, including the
	// fallback run after an unreachable checkpoint.
	PhaseDirect Phase = iota
	// PhaseFirst is the start→checkpoint segment of a two-phase run.
	PhaseFirst
	// PhaseSecond is the checkpoint→end segment of a two-phase run.
	PhaseSecond
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDirect:
		return "direct"
	case PhaseFirst:
		return "first"
	case PhaseSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Segment is one engine run: its finalize order, its reconstructed path
// (nil when the segment's target was unreachable), and its phase tag.
type Segment struct {
	Phase   Phase
	Visited []grid.Coord
	Path    []grid.Coord
}

// Result holds the outcome of one Plan invocation.
//
// Segments appear in run order. Fallback reports that a checkpoint existed
// but was unreachable, so the plan silently ignored it and ran start→end
// directly; in that case the failed first-phase finalize order is still
// exposed as a PhaseFirst segment with a nil path, followed by the
// PhaseDirect segment. Found reports whether the end node was reached.
type Result struct {
	Segments []Segment
	Fallback bool
	Found    bool
}

// Options holds tunable parameters for Plan.
type Options struct {
	// Algorithm picks the engine; Dijkstra by default.
	Algorithm Algorithm

	// Ctx is forwarded to every engine run.
	Ctx context.Context
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options selecting Dijkstra under a background
// context.
func DefaultOptions() Options {
	return Options{
		Algorithm: Dijkstra,
		Ctx:       context.Background(),
	}
}

// WithAlgorithm selects the engine Plan drives.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
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
