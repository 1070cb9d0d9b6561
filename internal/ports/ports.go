package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	// Nodes counts digit placements across propagation and search.
	Nodes int
	// Guesses counts branch digits tried by the search phase.
	Guesses  int
	Duration time.Duration
}

// Solver produces a solved copy of a grid or reports it unsolvable.
// Implementations must not mutate the input grid.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) on fixed digits.
type Validator interface {
	Validate(ctx context.Context, digits [81]uint8) (ok bool, conflicts []domain.CellCoord, err error)
}
