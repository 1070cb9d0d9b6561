package domain

import "fmt"

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// Index converts row/column coordinates to a linear cell index.
func Index(row, col int) int { return row*9 + col }

// RowCol converts a linear cell index to row/column coordinates.
func RowCol(i int) CellCoord { return CellCoord{Row: i / 9, Col: i % 9} }

// Grid holds the 81 cells of a puzzle in row-major order. The zero value is
// not usable; construct grids with New or Parse.
type Grid struct {
	cells [81]Cell
}

// New returns a grid with every cell open and all nine candidates.
func New() *Grid {
	var g Grid
	for i := range g.cells {
		g.cells[i] = Cell{cand: allCandidates}
	}
	return &g
}

// Parse builds a grid from an 81-character row-major digit string, '0'
// meaning blank. Each given is placed with full peer elimination, so the
// returned grid already has its candidate sets pruned. Two givens sharing a
// unit and a digit fail with ErrContradiction; malformed input fails with
// ErrBadLength or ErrBadChar.
func Parse(s string) (*Grid, error) {
	if len(s) != 81 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}
	g := New()
	for i := 0; i < 81; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: %q at index %d", ErrBadChar, ch, i)
		}
		if ch == '0' {
			continue
		}
		if _, err := g.Place(i, ch-'0'); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// PlaceResult reports the fallout of a placement on the cell's peers.
type PlaceResult struct {
	// Forced lists open peers whose candidate set shrank to one digit;
	// the caller is expected to place them next.
	Forced []int
	// Empty lists open peers left with no candidates at all. A non-empty
	// list means the grid is no longer solvable on this branch.
	Empty []int
}

// Place fixes cell i to digit d and removes d from the candidate set of
// every open peer. It fails with a wrapped ErrContradiction if the cell
// cannot take d or a peer is already fixed to d. Placing the digit a cell
// is already fixed to is a no-op.
func (g *Grid) Place(i int, d uint8) (PlaceResult, error) {
	c := &g.cells[i]
	if c.Fixed() {
		if c.digit == d {
			return PlaceResult{}, nil
		}
		return PlaceResult{}, fmt.Errorf("%w: cell at index %d is already fixed to %d", ErrContradiction, i, c.digit)
	}
	if !c.Has(d) {
		return PlaceResult{}, fmt.Errorf("%w: %d is not a candidate for cell at index %d", ErrContradiction, d, i)
	}
	c.digit = d
	c.cand = bit(d)

	var res PlaceResult
	for _, p := range peers[i] {
		pc := &g.cells[p]
		if pc.Fixed() {
			if pc.digit == d {
				return res, fmt.Errorf("%w: cells at indexes %d and %d are both %d", ErrContradiction, i, p, d)
			}
			continue
		}
		if !pc.Has(d) {
			continue
		}
		pc.cand &^= bit(d)
		switch pc.NumCandidates() {
		case 0:
			res.Empty = append(res.Empty, p)
		case 1:
			res.Forced = append(res.Forced, p)
		}
	}
	return res, nil
}

// CellAt returns a copy of the cell at linear index i.
func (g *Grid) CellAt(i int) Cell { return g.cells[i] }

// Unit returns the cell indexes of constraint group u: rows are units 0-8,
// columns 9-17, boxes 18-26.
func Unit(u int) [9]int { return units[u] }

// Peers returns the 20 distinct cells sharing a row, column or box with
// cell i, in ascending index order.
func Peers(i int) [20]int { return peers[i] }

// IsComplete reports whether every cell is fixed.
func (g *Grid) IsComplete() bool {
	for i := range g.cells {
		if !g.cells[i].Fixed() {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy. Grids are value types underneath,
// so this is a single O(81) copy; branches of a search can mutate their
// clones freely without touching the parent.
func (g *Grid) Clone() *Grid {
	g2 := *g
	return &g2
}

// TotalEntropy is the sum of candidate-set sizes over all cells. A solved
// grid has entropy 81.
func (g *Grid) TotalEntropy() int {
	total := 0
	for i := range g.cells {
		total += g.cells[i].NumCandidates()
	}
	return total
}

// Digits returns the current fixed digits in row-major order, 0 for open
// cells.
func (g *Grid) Digits() [81]uint8 {
	var out [81]uint8
	for i := range g.cells {
		out[i] = g.cells[i].digit
	}
	return out
}

// String renders the grid in the same 81-character format Parse accepts,
// open cells as '0'. On a complete grid this is the solution string.
func (g *Grid) String() string {
	var buf [81]byte
	for i := range g.cells {
		buf[i] = '0' + g.cells[i].digit
	}
	return string(buf[:])
}
