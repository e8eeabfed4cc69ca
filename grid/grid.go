// Package grid provides the mutable 2D board every other gridpath package
// operates on. It supports:
//
//   - Construction from dimensions, special positions, and a wall mask
//   - Role-exclusive special nodes (start, end, optional checkpoint)
//   - Wall toggling and atomic special-node moves
//   - Neighbor resolution in fixed up/down/left/right order
//   - Path reconstruction over arena-index back-references
//
// Search engines mutate node bookkeeping fields in place; that shared state
// is intentional and is wiped by ResetSearchFields before every run.
package grid

import "sync/atomic"

// Grid is a rectangular arena of Nodes, fixed at rows×cols for its lifetime.
// Nodes are stored row-major; index(r,c) = r*cols + c.
type Grid struct {
	rows, cols int
	nodes      []Node

	start, end    Coord
	checkpoint    Coord
	hasCheckpoint bool

	busy atomic.Bool
}

// NewGrid constructs a rows×cols grid with the given start and end
// positions, all walls down and all search fields at defaults.
// Returns ErrBadDimensions for degenerate sizes, ErrOutOfBounds for special
// positions outside the grid, and ErrRoleConflict when two special positions
// coincide. Complexity: O(rows×cols).
func NewGrid(rows, cols int, start, end Coord, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		nodes: make([]Node, rows*cols),
		start: start,
		end:   end,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := &g.nodes[r*cols+c]
			n.Row, n.Col = r, c
			resetNode(n)
		}
	}

	// Special roles: bounds first, then pairwise exclusivity.
	if err := g.assignRole(start, RoleStart); err != nil {
		return nil, err
	}
	if err := g.assignRole(end, RoleEnd); err != nil {
		return nil, err
	}
	if o.HasCheckpoint {
		if err := g.assignRole(o.Checkpoint, RoleCheckpoint); err != nil {
			return nil, err
		}
		g.checkpoint = o.Checkpoint
		g.hasCheckpoint = true
	}

	for _, w := range o.Walls {
		if !g.InBounds(w.Row, w.Col) {
			return nil, ErrOutOfBounds
		}
		g.SetWall(w.Row, w.Col, true)
	}
	return g, nil
}

// assignRole stamps role on the node at pos during construction.
func (g *Grid) assignRole(pos Coord, role Role) error {
	if !g.InBounds(pos.Row, pos.Col) {
		return ErrOutOfBounds
	}
	n := g.At(pos.Row, pos.Col)
	if n.Role != RoleNormal {
		return ErrRoleConflict
	}
	n.Role = role
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the node at (r,c). Out-of-bounds access is a programming
// error and panics; grid bounds are a closed, caller-controlled invariant.
func (g *Grid) At(r, c int) *Node {
	return &g.nodes[g.Index(Coord{Row: r, Col: c})]
}

// Index maps a coordinate to its row-major arena index.
func (g *Grid) Index(c Coord) int {
	if !g.InBounds(c.Row, c.Col) {
		panic("grid: coordinate out of bounds")
	}
	return c.Row*g.cols + c.Col
}

// CoordAt converts a row-major arena index back to a coordinate.
func (g *Grid) CoordAt(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Start returns the current start position.
func (g *Grid) Start() Coord { return g.start }

// End returns the current end position.
func (g *Grid) End() Coord { return g.end }

// Checkpoint returns the checkpoint position and whether one is set.
func (g *Grid) Checkpoint() (Coord, bool) { return g.checkpoint, g.hasCheckpoint }

// SetWall sets or clears the wall flag at (r,c). Drawing a wall onto a node
// holding a special role is a silent no-op, preserving the permissive
// best-effort behavior callers rely on.
func (g *Grid) SetWall(r, c int, wall bool) {
	n := g.At(r, c)
	if n.Role != RoleNormal {
		return
	}
	n.Wall = wall
}

// MoveSpecial relocates the special node of the given role from one
// position to another. The swap is atomic: either both nodes change or the
// grid is left untouched. Returns ErrRoleMismatch when from does not hold
// role, ErrWallTarget when to is a wall, and ErrRoleConflict when to holds
// a different special role. Moving a node onto itself is a no-op.
func (g *Grid) MoveSpecial(role Role, from, to Coord) error {
	if role == RoleNormal {
		return ErrRoleMismatch
	}
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return ErrOutOfBounds
	}
	src := g.At(from.Row, from.Col)
	if src.Role != role {
		return ErrRoleMismatch
	}
	if from == to {
		return nil
	}
	dst := g.At(to.Row, to.Col)
	if dst.Wall {
		return ErrWallTarget
	}
	if dst.Role != RoleNormal {
		return ErrRoleConflict
	}

	src.Role = RoleNormal
	dst.Role = role
	switch role {
	case RoleStart:
		g.start = to
	case RoleEnd:
		g.end = to
	case RoleCheckpoint:
		g.checkpoint = to
	}
	return nil
}

// SetCheckpoint places a checkpoint at c, or moves the existing one.
// Returns ErrWallTarget when c is a wall and ErrRoleConflict when c already
// holds another special role.
func (g *Grid) SetCheckpoint(c Coord) error {
	if !g.InBounds(c.Row, c.Col) {
		return ErrOutOfBounds
	}
	if g.hasCheckpoint {
		return g.MoveSpecial(RoleCheckpoint, g.checkpoint, c)
	}
	n := g.At(c.Row, c.Col)
	if n.Wall {
		return ErrWallTarget
	}
	if n.Role != RoleNormal {
		return ErrRoleConflict
	}
	n.Role = RoleCheckpoint
	g.checkpoint = c
	g.hasCheckpoint = true
	return nil
}

// ClearCheckpoint removes the checkpoint, if any.
func (g *Grid) ClearCheckpoint() {
	if !g.hasCheckpoint {
		return
	}
	g.At(g.checkpoint.Row, g.checkpoint.Col).Role = RoleNormal
	g.hasCheckpoint = false
	g.checkpoint = Coord{}
}

// ResetSearchFields restores every node's search bookkeeping to defaults:
// not visited, Distance and TotalDistance at Infinity, Heuristic zero, no
// predecessor. Walls, roles and weights are untouched. Engines call this at
// the start of every run; the two-phase orchestrator calls it again between
// phases so the reset is a visible step, not a hidden side effect.
func (g *Grid) ResetSearchFields() {
	for i := range g.nodes {
		resetNode(&g.nodes[i])
	}
}

func resetNode(n *Node) {
	n.Visited = false
	n.Distance = Infinity
	n.Heuristic = 0
	n.TotalDistance = Infinity
	n.Prev = NoPrev
}

// Acquire marks the grid as running a search or generation. It fails fast
// with ErrBusy when another run is already in progress: two simultaneous
// runs would silently corrupt the shared node state.
func (g *Grid) Acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

// Release clears the busy flag set by Acquire.
func (g *Grid) Release() {
	g.busy.Store(false)
}
