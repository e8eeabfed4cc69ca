package grid

// PathTo reconstructs the path produced by the last search run, walking
// Prev arena indices back from target and returning the nodes in
// start→target order. A trivial run whose source equals target yields a
// single-node path.
//
// Returns ErrUnreachable when the last search never finalized target;
// callers must check this before trusting the chain, since an unrelaxed
// node is indistinguishable from a trivial source by Prev alone.
func (g *Grid) PathTo(target Coord) ([]Coord, error) {
	n := g.At(target.Row, target.Col)
	if !n.Visited {
		return nil, ErrUnreachable
	}
	path := []Coord{target}
	for idx := n.Prev; idx != NoPrev; idx = g.nodes[idx].Prev {
		path = append(path, g.CoordAt(idx))
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
