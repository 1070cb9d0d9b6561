package solver

import "svw.info/sudoku-solver/internal/domain"

// solve propagates to a fixpoint and, if the grid is still incomplete,
// branches on the most constrained open cell. Each candidate is tried on a
// clone, so a failed hypothesis is discarded wholesale and the parent grid
// stays intact for the next digit.
func (r *run) solve(g *domain.Grid) (*domain.Grid, bool) {
	if !r.propagate(g) {
		return nil, false
	}
	if g.IsComplete() {
		return g, true
	}
	if r.stopped() {
		return nil, false
	}

	i, cands := branchCell(g)
	if r.logger != nil {
		r.logger.Debug("branching", "cell", i, "candidates", len(cands))
	}
	for _, d := range cands {
		r.guesses++
		r.nodes++
		child := g.Clone()
		res, err := child.Place(i, d)
		if err != nil || len(res.Empty) > 0 {
			continue
		}
		if out, ok := r.solve(child); ok {
			return out, true
		}
		if r.stopped() {
			return nil, false
		}
	}
	return nil, false
}

// branchCell picks the open cell with the fewest candidates, lowest index
// winning ties, per the minimum-remaining-values heuristic. Candidates come
// back in ascending digit order so the search is deterministic.
func branchCell(g *domain.Grid) (int, []uint8) {
	best, bestN := -1, 10
	for i := 0; i < 81; i++ {
		c := g.CellAt(i)
		if c.Fixed() {
			continue
		}
		if n := c.NumCandidates(); n < bestN {
			best, bestN = i, n
			if n == 2 {
				break
			}
		}
	}
	return best, g.CellAt(best).Candidates()
}
