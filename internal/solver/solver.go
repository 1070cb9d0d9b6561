package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// ErrUnsolvable means propagation and search exhausted every branch without
// completing the grid.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// DefaultMaxNodes caps placements per solve. A valid 9x9 puzzle resolves in
// a few hundred nodes; the cap only bites on degenerate inputs, which are
// then reported as unsolvable instead of searching without bound.
const DefaultMaxNodes = 1 << 22

// Solver runs constraint propagation plus backtracking search on a grid.
type Solver struct {
	// Logger, when set, receives per-round propagation and branching
	// details at debug level.
	Logger *slog.Logger
	// MaxNodes overrides DefaultMaxNodes when positive.
	MaxNodes int
}

func New() *Solver { return &Solver{MaxNodes: DefaultMaxNodes} }

// Solve returns a solved copy of g. The input grid is left untouched; all
// work happens on clones. Cancellation of ctx surfaces as ctx.Err().
func (s *Solver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	r := &run{ctx: ctx, logger: s.Logger, maxNodes: s.MaxNodes}
	if r.maxNodes <= 0 {
		r.maxNodes = DefaultMaxNodes
	}
	out, ok := r.solve(g.Clone())
	st := ports.Stats{Nodes: r.nodes, Guesses: r.guesses, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return out, st, nil
}

// run owns the mutable state of one Solve call.
type run struct {
	ctx      context.Context
	logger   *slog.Logger
	maxNodes int
	nodes    int
	guesses  int
}

func (r *run) stopped() bool {
	return r.nodes > r.maxNodes || r.ctx.Err() != nil
}
