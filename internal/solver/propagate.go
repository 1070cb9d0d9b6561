package solver

import "svw.info/sudoku-solver/internal/domain"

// propagate applies the deterministic rules to a fixpoint: elimination via
// Place, naked singles drained from a work-list, then hidden singles per
// row/column/box. Reports false when the branch hits a contradiction.
func (r *run) propagate(g *domain.Grid) bool {
	queue := make([]int, 0, 81)
	for i := 0; i < 81; i++ {
		c := g.CellAt(i)
		if c.Fixed() {
			continue
		}
		switch c.NumCandidates() {
		case 0:
			return false
		case 1:
			queue = append(queue, i)
		}
	}
	for round := 0; ; round++ {
		placed := 0
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			c := g.CellAt(i)
			if c.Fixed() {
				continue
			}
			if c.NumCandidates() == 0 {
				return false
			}
			if !r.place(g, i, c.Candidates()[0], &queue) {
				return false
			}
			placed++
		}
		if r.logger != nil {
			r.logger.Debug("propagation round",
				"round", round, "placed", placed, "entropy", g.TotalEntropy())
		}
		again, ok := r.hiddenSingles(g, &queue)
		if !ok {
			return false
		}
		if !again {
			return true
		}
	}
}

// place wraps Grid.Place with node accounting and work-list feeding.
func (r *run) place(g *domain.Grid, i int, d uint8, queue *[]int) bool {
	r.nodes++
	if r.nodes > r.maxNodes {
		return false
	}
	res, err := g.Place(i, d)
	if err != nil || len(res.Empty) > 0 {
		return false
	}
	*queue = append(*queue, res.Forced...)
	return true
}

// hiddenSingles places every digit that has exactly one remaining home
// within a unit. Returns (placed anything, branch still viable); a digit
// with no home at all in some unit kills the branch.
func (r *run) hiddenSingles(g *domain.Grid, queue *[]int) (bool, bool) {
	placedAny := false
	for u := 0; u < 27; u++ {
		cells := domain.Unit(u)
		for d := uint8(1); d <= 9; d++ {
			home := -1
			count := 0
			fixed := false
			for _, i := range cells {
				c := g.CellAt(i)
				if c.Fixed() {
					if c.Digit() == d {
						fixed = true
						break
					}
					continue
				}
				if c.Has(d) {
					home = i
					count++
				}
			}
			if fixed {
				continue
			}
			if count == 0 {
				return placedAny, false
			}
			if count == 1 {
				if !r.place(g, home, d, queue) {
					return placedAny, false
				}
				placedAny = true
			}
		}
	}
	return placedAny, true
}
