package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
}

func NewService(s ports.Solver, v ports.Validator) *Service {
	return &Service{Solver: s, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolvePuzzle runs the full pipeline: parse the 81-character input, solve,
// cross-check the result against the row/col/box constraints, serialize.
// The validation step guards against solver bugs ever reaching the caller
// as a garbled solution line.
func (u *Service) SolvePuzzle(ctx context.Context, input string) (string, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	g, err := domain.Parse(input)
	if err != nil {
		return "", ports.Stats{}, err
	}
	solved, st, err := u.Solver.Solve(ctx, g)
	if err != nil {
		return "", st, err
	}
	if !solved.IsComplete() {
		return "", st, errors.New("solver returned an incomplete grid")
	}
	ok, conf, err := u.Validator.Validate(ctx, solved.Digits())
	if err != nil {
		return "", st, err
	}
	if !ok {
		return "", st, fmt.Errorf("solver returned an invalid grid: conflicts at %v", conf)
	}
	return solved.String(), st, nil
}
