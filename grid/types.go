// Package grid defines the board model shared by every search engine and
// maze generator: nodes addressed by (row, col), special roles, walls, and
// per-search bookkeeping fields.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates the requested grid has no rows or no columns.
	ErrBadDimensions = errors.New("grid: dimensions must be at least 1×1")

	// ErrOutOfBounds indicates a special-node position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrRoleConflict indicates two special roles would land on one node.
	ErrRoleConflict = errors.New("grid: node already holds a special role")

	// ErrRoleMismatch indicates the from-position does not hold the role
	// a move operation claims it does.
	ErrRoleMismatch = errors.New("grid: node does not hold the expected role")

	// ErrWallTarget indicates an attempt to place a special node on a wall.
	ErrWallTarget = errors.New("grid: target node is a wall")

	// ErrBusy indicates a search or generation is already running against
	// this grid. Runs must be serialized by the caller.
	ErrBusy = errors.New("grid: another search or generation is in progress")

	// ErrUnreachable indicates path reconstruction was requested for a node
	// the last search never finalized.
	ErrUnreachable = errors.New("grid: target was not reached by the last search")
)

// Infinity is the unreachable-distance sentinel assigned to every node's
// Distance and TotalDistance on reset.
const Infinity = int64(math.MaxInt64)

// NoPrev marks a node without a predecessor: the search source, or any node
// never relaxed by the last search.
const NoPrev = -1

// Role tags a node as one of the at-most-one-per-grid special positions.
// Exactly one Role applies to a node at any time; a node with a special role
// is never a wall.
type Role uint8

const (
	// RoleNormal is every node that is not a special position.
	RoleNormal Role = iota
	// RoleStart is the search source position.
	RoleStart
	// RoleEnd is the search destination position.
	RoleEnd
	// RoleCheckpoint is the optional intermediate stop for two-phase runs.
	RoleCheckpoint
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleCheckpoint:
		return "checkpoint"
	default:
		return "normal"
	}
}

// Coord addresses a node by row and column.
type Coord struct {
	Row, Col int
}

// ManhattanTo returns |c.Row-o.Row| + |c.Col-o.Col|, the admissible and
// consistent heuristic for 4-connected unit-cost grids.
func (c Coord) ManhattanTo(o Coord) int64 {
	dr := int64(c.Row - o.Row)
	if dr < 0 {
		dr = -dr
	}
	dc := int64(c.Col - o.Col)
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Node is a single grid cell. Row and Col are fixed at construction; Role,
// Wall and Weight persist across searches; the remaining fields are search
// bookkeeping, reset at the start of every search run.
//
// Prev is a row-major arena index into the owning grid (NoPrev when unset),
// not a pointer; it exists solely for path reconstruction.
type Node struct {
	Row, Col int
	Role     Role
	Wall     bool

	// Weight is a reserved terrain cost. Generators may tag cells with a
	// heavy value; neither search engine consumes it.
	Weight int64

	Visited       bool
	Distance      int64
	Heuristic     int64
	TotalDistance int64
	Prev          int
}

// Options holds construction-time parameters for NewGrid.
type Options struct {
	// Checkpoint is the optional intermediate stop position.
	Checkpoint    Coord
	HasCheckpoint bool

	// Walls is the initial wall mask. Cells holding a special role are
	// silently skipped, matching SetWall semantics.
	Walls []Coord
}

// Option configures NewGrid via functional arguments.
type Option func(*Options)

// WithCheckpoint places a checkpoint at c during construction.
func WithCheckpoint(c Coord) Option {
	return func(o *Options) {
		o.Checkpoint = c
		o.HasCheckpoint = true
	}
}

// WithWalls applies an initial wall mask during construction.
func WithWalls(cells ...Coord) Option {
	return func(o *Options) {
		o.Walls = append(o.Walls, cells...)
	}
}
