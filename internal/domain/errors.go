package domain

import "errors"

var (
	// ErrBadLength means the input is not exactly 81 characters.
	ErrBadLength = errors.New("input must be 81 characters")
	// ErrBadChar means the input contains a character outside '0'..'9'.
	ErrBadChar = errors.New("input must contain only digits 0-9")
	// ErrContradiction means two peer cells demand the same digit.
	ErrContradiction = errors.New("contradiction")
)
