package maze

import "github.com/katalvlaran/gridpath/grid"

// StairPattern draws a deterministic diagonal staircase: starting at (2,2),
// a horizontal segment then a vertical segment of length 3, advancing the
// anchor by the same stride until the staircase nears the boundary, then a
// border. No randomness is involved; the seed option is ignored.
//
// The result is a fixed obstacle pattern for algorithm comparison, not a
// generated maze.
func StairPattern(g *grid.Grid, opts ...Option) ([]grid.Coord, error) {
	p, err := begin(g, opts)
	if err != nil {
		return nil, err
	}
	defer g.Release()

	r, c := stairStride-1, stairStride-1
	for r+stairStride < g.Rows()-1 && c+stairStride < g.Cols()-1 {
		for i := 0; i < stairStride; i++ {
			p.place(r, c+i)
		}
		for i := 1; i < stairStride; i++ {
			p.place(r+i, c+stairStride-1)
		}
		r += stairStride
		c += stairStride
	}
	p.border()
	return p.order, nil
}
