// Package maze generates wall layouts over a gridpath grid. Five
// generators share one contract:
//
//	generate(g, opts...) → ordered []grid.Coord of wall placements
//
// Every generator mutates the grid's wall flags in place and returns the
// placements in emission order for one-at-a-time animation. None of them
// ever walls a special node, and a Chebyshev radius-2 zone around every
// special node is kept open so it cannot be boxed in. Degenerate regions
// (a sub-region too small to subdivide, a grid too small for a lattice)
// are normal base cases, not errors.
//
// Connectivity: RecursiveDivision and RecursiveBacktracker are solvable by
// construction. BasicRandom and DensityRandom are cosmetic obstacle fields
// with no solvability guarantee — an occasional dead grid is a known
// characteristic of those algorithms, deliberately not repaired here.
package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// cardinal holds the four orthogonal directions in up/down/left/right
// order, matching the grid's neighbor order.
var cardinal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// placer carries the shared mutable state of one generation run: the grid,
// the seeded random stream, the emission log, and the protected zones.
type placer struct {
	g        *grid.Grid
	rng      *rand.Rand
	onPlace  PlaceFunc
	weighted bool

	order     []grid.Coord
	protected map[grid.Coord]struct{}
}

// begin validates the grid, applies options, acquires the busy guard, and
// builds the placer. Callers must defer g.Release() on success.
func begin(g *grid.Grid, opts []Option) (*placer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.Acquire(); err != nil {
		return nil, err
	}

	p := &placer{
		g:         g,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		onPlace:   cfg.OnPlace,
		weighted:  cfg.Weighted,
		protected: make(map[grid.Coord]struct{}),
	}
	p.protect(g.Start())
	p.protect(g.End())
	if cp, ok := g.Checkpoint(); ok {
		p.protect(cp)
	}
	return p, nil
}

// protect marks the radius-2 neighborhood around a special node as
// untouchable, so the node is never boxed in.
func (p *placer) protect(c grid.Coord) {
	for dr := -clearRadius; dr <= clearRadius; dr++ {
		for dc := -clearRadius; dc <= clearRadius; dc++ {
			r, col := c.Row+dr, c.Col+dc
			if p.g.InBounds(r, col) {
				p.protected[grid.Coord{Row: r, Col: col}] = struct{}{}
			}
		}
	}
}

// place emits one wall placement (or weight tag) at (r,c). Out-of-bounds,
// protected, special-role, and already-placed cells are silently skipped.
func (p *placer) place(r, c int) {
	if !p.g.InBounds(r, c) {
		return
	}
	co := grid.Coord{Row: r, Col: c}
	if _, ok := p.protected[co]; ok {
		return
	}
	n := p.g.At(r, c)
	if n.Role != grid.RoleNormal {
		return
	}
	if p.weighted {
		if n.Wall || n.Weight == HeavyWeight {
			return
		}
		n.Weight = HeavyWeight
	} else {
		if n.Wall {
			return
		}
		p.g.SetWall(r, c, true)
	}
	p.order = append(p.order, co)
	if p.onPlace != nil {
		p.onPlace(co)
	}
}

// border walls the outer ring of the grid.
func (p *placer) border() {
	for c := 0; c < p.g.Cols(); c++ {
		p.place(0, c)
		p.place(p.g.Rows()-1, c)
	}
	for r := 1; r < p.g.Rows()-1; r++ {
		p.place(r, 0)
		p.place(r, p.g.Cols()-1)
	}
}

// compact drops emitted placements a later pass re-opened, preserving
// emission order. Used by generators that clear cells after placing.
func (p *placer) compact() []grid.Coord {
	out := make([]grid.Coord, 0, len(p.order))
	for _, c := range p.order {
		n := p.g.At(c.Row, c.Col)
		if p.weighted {
			if n.Weight == HeavyWeight {
				out = append(out, c)
			}
			continue
		}
		if n.Wall {
			out = append(out, c)
		}
	}
	return out
}
