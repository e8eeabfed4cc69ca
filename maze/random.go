package maze

import "github.com/katalvlaran/gridpath/grid"

// BasicRandom places a border, then scatters short random wall clusters: on
// a stride-2 lattice, each cell seeds a wall with probability 0.25 and the
// seed is extended 1–2 cells in randomly chosen cardinal directions.
//
// This is a cosmetic obstacle field, not a maze — there is no solvability
// guarantee. The radius-2 zones around special nodes stay open, so the
// start and end are never boxed in locally.
//
// Under WithWeighted the same layout tags HeavyWeight terrain cells instead
// of walls (no border either), and the returned coordinates are the tagged
// cells.
func BasicRandom(g *grid.Grid, opts ...Option) ([]grid.Coord, error) {
	p, err := begin(g, opts)
	if err != nil {
		return nil, err
	}
	defer g.Release()

	if !p.weighted {
		p.border()
	}
	for r := basicStride; r < g.Rows()-1; r += basicStride {
		for c := basicStride; c < g.Cols()-1; c += basicStride {
			if p.rng.Float64() >= basicDensity {
				continue
			}
			p.place(r, c)
			// Extend the seed 1–2 cells, re-rolling direction per step.
			steps := 1 + p.rng.Intn(2)
			cr, cc := r, c
			for i := 0; i < steps; i++ {
				d := cardinal[p.rng.Intn(len(cardinal))]
				cr += d[0]
				cc += d[1]
				p.place(cr, cc)
			}
		}
	}
	return p.order, nil
}
