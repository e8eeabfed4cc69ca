package maze

import "github.com/katalvlaran/gridpath/grid"

// DensityRandom generates a clustered random obstacle field in three
// passes:
//
//  1. Fill: every cell becomes a wall independently with probability 0.3.
//  2. Cluster: any open cell touching ≥2 walls of the fill pass
//     (8-connected) becomes a wall with probability 0.45. The pass reads a
//     snapshot of the fill so its own additions do not cascade.
//  3. Thin: every cell on the stride-2 lattice is re-opened with
//     probability 0.4, cutting pathways back through the clusters.
//
// Like BasicRandom this carries no solvability guarantee; an occasionally
// unsolvable grid is a characteristic of the algorithm, not a defect, and
// no connectivity repair pass is applied.
func DensityRandom(g *grid.Grid, opts ...Option) ([]grid.Coord, error) {
	p, err := begin(g, opts)
	if err != nil {
		return nil, err
	}
	defer g.Release()

	rows, cols := g.Rows(), g.Cols()

	// Pass 1: independent fill. The random stream is consumed for every
	// cell, placeable or not, so layouts are seed-stable.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if p.rng.Float64() < fillProbability {
				p.place(r, c)
			}
		}
	}

	// Pass 2: clustering over a snapshot of pass 1.
	snapshot := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			snapshot[r*cols+c] = g.At(r, c).Wall
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if snapshot[r*cols+c] {
				continue
			}
			if wallNeighbors(snapshot, rows, cols, r, c) < 2 {
				continue
			}
			if p.rng.Float64() < clusterProbability {
				p.place(r, c)
			}
		}
	}

	// Pass 3: thinning on the stride lattice.
	for r := 0; r < rows; r += basicStride {
		for c := 0; c < cols; c += basicStride {
			if g.At(r, c).Wall && p.rng.Float64() < thinProbability {
				g.SetWall(r, c, false)
			}
		}
	}
	return p.compact(), nil
}

// wallNeighbors counts the 8-connected walls around (r,c) in the snapshot.
func wallNeighbors(snapshot []bool, rows, cols, r, c int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if snapshot[nr*cols+nc] {
				count++
			}
		}
	}
	return count
}
