package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
)

func digitsOf(t *testing.T, s string) [81]uint8 {
	t.Helper()
	require.Len(t, s, 81)
	var out [81]uint8
	for i := 0; i < 81; i++ {
		out[i] = s[i] - '0'
	}
	return out
}

func TestValidateSolvedGrid(t *testing.T) {
	digits := digitsOf(t, "298317645764285139153946278327168954981453726645792813539821467872634591416579382")
	ok, conf, err := New().Validate(context.Background(), digits)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conf)
}

func TestValidateSkipsOpenCells(t *testing.T) {
	var digits [81]uint8
	digits[0] = 5
	digits[40] = 5
	ok, conf, err := New().Validate(context.Background(), digits)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conf)
}

func TestValidateReportsConflicts(t *testing.T) {
	cases := []struct {
		name string
		a, b int // conflicting cell indexes, a < b
	}{
		{"row", 0, 3},
		{"column", 4, 76},
		{"box", 30, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var digits [81]uint8
			digits[tc.a] = 7
			digits[tc.b] = 7
			ok, conf, err := New().Validate(context.Background(), digits)
			require.NoError(t, err)
			require.False(t, ok)
			require.Contains(t, conf, domain.RowCol(tc.b))
		})
	}
}
