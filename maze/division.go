package maze

import "github.com/katalvlaran/gridpath/grid"

// RecursiveDivision generates a fully connected maze by divide-and-conquer:
// a border, then a recursive split of each rectangular sub-region by one
// wall line with a single passage.
//
// Wall lines land on even-aligned coordinates and passages on odd-aligned
// ones, so no later division can ever cover an earlier passage — that
// alignment is what makes every cell reachable from every other by
// construction. Orientation follows the longer extent of each sub-region
// (the dividing line is the shorter one), producing roughly square
// sub-regions; equal extents pick randomly.
func RecursiveDivision(g *grid.Grid, opts ...Option) ([]grid.Coord, error) {
	p, err := begin(g, opts)
	if err != nil {
		return nil, err
	}
	defer g.Release()

	p.border()
	p.divide(1, g.Rows()-2, 1, g.Cols()-2)
	return p.order, nil
}

// divide splits the sub-region [rowStart..rowEnd]×[colStart..colEnd] by one
// wall line with one passage, then recurses into the two halves. A region
// whose extent in the split dimension cannot hold an even-aligned wall line
// is the recursion base case.
func (p *placer) divide(rowStart, rowEnd, colStart, colEnd int) {
	if rowEnd < rowStart || colEnd < colStart {
		return
	}
	height := rowEnd - rowStart + 1
	width := colEnd - colStart + 1

	horizontal := height > width
	if height == width {
		horizontal = p.rng.Intn(2) == 0
	}

	if horizontal {
		// Candidate wall rows: rowStart+1, rowStart+3, … (even-aligned).
		nWalls := (rowEnd - rowStart) / 2
		if nWalls < 1 {
			return
		}
		wallRow := rowStart + 1 + 2*p.rng.Intn(nWalls)
		passage := colStart + 2*p.rng.Intn((colEnd-colStart)/2+1)
		for c := colStart; c <= colEnd; c++ {
			if c != passage {
				p.place(wallRow, c)
			}
		}
		p.divide(rowStart, wallRow-1, colStart, colEnd)
		p.divide(wallRow+1, rowEnd, colStart, colEnd)
		return
	}

	nWalls := (colEnd - colStart) / 2
	if nWalls < 1 {
		return
	}
	wallCol := colStart + 1 + 2*p.rng.Intn(nWalls)
	passage := rowStart + 2*p.rng.Intn((rowEnd-rowStart)/2+1)
	for r := rowStart; r <= rowEnd; r++ {
		if r != passage {
			p.place(r, wallCol)
		}
	}
	p.divide(rowStart, rowEnd, colStart, wallCol-1)
	p.divide(rowStart, rowEnd, wallCol+1, colEnd)
}
