// Package maze defines configuration options, tuning constants, and
// sentinel errors shared by the wall-placement generators.
package maze

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrNilGrid indicates a nil *grid.Grid was passed to a generator.
var ErrNilGrid = errors.New("maze: grid is nil")

// HeavyWeight is the terrain cost tagged on cells by BasicRandom under
// WithWeighted. Neither search engine consumes it; it exists for renderers
// that present weighted cells.
const HeavyWeight = int64(15)

// Tuning constants for the generators. These are fixed characteristics of
// each algorithm, not caller knobs.
const (
	// clearRadius is the Chebyshev radius kept open around every special
	// node so it is never boxed in by a generator.
	clearRadius = 2

	// basicStride is the seed spacing of BasicRandom and the decimation
	// spacing of DensityRandom.
	basicStride = 2

	// basicDensity is the seed-wall probability of BasicRandom.
	basicDensity = 0.25

	// fillProbability is the independent per-cell wall probability of
	// DensityRandom's first pass.
	fillProbability = 0.3

	// clusterProbability is DensityRandom's second-pass probability of
	// walling an open cell that already touches ≥2 walls (8-connected).
	clusterProbability = 0.45

	// thinProbability is DensityRandom's third-pass probability of
	// re-opening a wall on the stride grid.
	thinProbability = 0.4

	// stairStride is the segment length and anchor advance of StairPattern.
	stairStride = 3
)

// PlaceFunc observes one wall placement (or weight tag) as it happens.
type PlaceFunc func(c grid.Coord)

// Options holds tunable parameters shared by all generators.
type Options struct {
	// Seed drives the generator's random stream. Defaults to the current
	// time; fix it for reproducible mazes. StairPattern ignores it.
	Seed int64

	// OnPlace is invoked for every emitted placement, in emission order.
	OnPlace PlaceFunc

	// Weighted switches BasicRandom from walls to HeavyWeight terrain
	// tags. Other generators ignore it.
	Weighted bool
}

// Option configures a generator via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a time-derived seed, no hook, and
// wall placement (not weight tagging).
func DefaultOptions() Options {
	return Options{Seed: time.Now().UnixNano()}
}

// WithSeed fixes the random seed for reproducible generation.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnPlace registers a callback to run on every placement.
func WithOnPlace(fn PlaceFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// WithWeighted makes BasicRandom tag HeavyWeight cells instead of placing
// walls.
func WithWeighted() Option {
	return func(o *Options) {
		o.Weighted = true
	}
}
