package domain

import "math/bits"

// allCandidates has bits 1..9 set, one per digit.
const allCandidates uint16 = 0x3fe

func bit(d uint8) uint16 { return 1 << d }

// Cell is one square of the grid: fixed to a digit, or open with a set of
// candidate digits tracked as a bitmask (bit d set means digit d is still
// possible). A fixed cell keeps exactly its own bit in the mask.
type Cell struct {
	digit uint8
	cand  uint16
}

// Fixed reports whether the cell has a settled digit.
func (c Cell) Fixed() bool { return c.digit != 0 }

// Digit returns the settled digit, or 0 for an open cell.
func (c Cell) Digit() uint8 { return c.digit }

// Has reports whether d is still a candidate for the cell.
func (c Cell) Has(d uint8) bool { return c.cand&bit(d) != 0 }

// NumCandidates is the size of the candidate set (1 for a fixed cell).
func (c Cell) NumCandidates() int { return bits.OnesCount16(c.cand) }

// Candidates lists the remaining candidates in ascending order.
func (c Cell) Candidates() []uint8 {
	out := make([]uint8, 0, c.NumCandidates())
	for d := uint8(1); d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
