package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// A classic, solvable Sudoku (0 = empty), row-major.
const sample = "530070000" +
	"600195000" +
	"098000060" +
	"800060003" +
	"400803001" +
	"700020006" +
	"060000280" +
	"000419005" +
	"000080079"

const solved = "298317645764285139153946278327168954981453726645792813539821467872634591416579382"

func TestPeerTable(t *testing.T) {
	// Every cell has 20 distinct peers in ascending order, none itself.
	for i := 0; i < 81; i++ {
		prev := -1
		for _, p := range peers[i] {
			require.Greater(t, p, prev, "peers of %d not strictly ascending", i)
			require.NotEqual(t, i, p, "cell %d lists itself as a peer", i)
			prev = p
		}
	}
	// Spot values.
	require.Equal(t, 1, peers[0][0])
	require.Equal(t, 4, peers[2][3])
	require.Equal(t, 8, peers[5][7])
	require.Equal(t, 24, peers[19][11])
}

func TestUnitTable(t *testing.T) {
	require.Equal(t, [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Unit(0))
	require.Equal(t, [9]int{2, 11, 20, 29, 38, 47, 56, 65, 74}, Unit(11))
	require.Equal(t, [9]int{0, 1, 2, 9, 10, 11, 18, 19, 20}, Unit(18))
	require.Equal(t, [9]int{60, 61, 62, 69, 70, 71, 78, 79, 80}, Unit(26))
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", strings.Repeat("0", 80), ErrBadLength},
		{"too long", strings.Repeat("0", 82), ErrBadLength},
		{"letter", "a" + strings.Repeat("0", 80), ErrBadChar},
		{"dot", strings.Repeat("0", 40) + "." + strings.Repeat("0", 40), ErrBadChar},
		{"row duplicate", "11" + strings.Repeat("0", 79), ErrContradiction},
		{
			"column duplicate",
			"000040007480960501063570820009610203350097006000005094000000005804706910001040070",
			ErrContradiction,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.input)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	g, err := Parse(solved)
	require.NoError(t, err)
	require.True(t, g.IsComplete())
	require.Equal(t, solved, g.String())
}

func TestParseSeedsCandidates(t *testing.T) {
	g, err := Parse(sample)
	require.NoError(t, err)
	require.False(t, g.IsComplete())

	// Cell (0,2): row rules out 5,3,7; column rules out 8; box rules out
	// 5,3,6,9,8 — leaving 1, 2 and 4.
	c := g.CellAt(Index(0, 2))
	require.False(t, c.Fixed())
	if diff := cmp.Diff([]uint8{1, 2, 4}, c.Candidates()); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}

	// Givens survive parsing untouched.
	c = g.CellAt(Index(0, 0))
	require.True(t, c.Fixed())
	require.Equal(t, uint8(5), c.Digit())
}

func TestPlaceEliminatesPeers(t *testing.T) {
	g := New()
	res, err := g.Place(0, 5)
	require.NoError(t, err)
	require.Empty(t, res.Forced)
	require.Empty(t, res.Empty)

	require.False(t, g.CellAt(1).Has(5), "row peer kept the digit")
	require.False(t, g.CellAt(9).Has(5), "column peer kept the digit")
	require.False(t, g.CellAt(10).Has(5), "box peer kept the digit")
	require.True(t, g.CellAt(30).Has(5), "non-peer lost the digit")

	// Peer can no longer take 5.
	_, err = g.Place(10, 5)
	require.ErrorIs(t, err, ErrContradiction)

	// Re-placing the same digit is a no-op; a different digit conflicts.
	_, err = g.Place(0, 5)
	require.NoError(t, err)
	_, err = g.Place(0, 6)
	require.ErrorIs(t, err, ErrContradiction)
}

func TestPlaceReportsForcedCells(t *testing.T) {
	g := New()
	var res PlaceResult
	var err error
	for d := uint8(1); d <= 8; d++ {
		res, err = g.Place(int(d)-1, d)
		require.NoError(t, err)
	}
	// Digits 1-8 fill the first eight cells of row 0; the ninth is forced.
	if diff := cmp.Diff([]int{8}, res.Forced); diff != "" {
		t.Fatalf("forced cells mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []uint8{9}, g.CellAt(8).Candidates())
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := Parse(sample)
	require.NoError(t, err)
	snap := g.String()

	c := g.Clone()
	_, err = c.Place(Index(0, 2), 1)
	require.NoError(t, err)

	require.Equal(t, snap, g.String())
	require.NotEqual(t, c.String(), g.String())
}

func TestTotalEntropy(t *testing.T) {
	require.Equal(t, 729, New().TotalEntropy())

	g, err := Parse(solved)
	require.NoError(t, err)
	require.Equal(t, 81, g.TotalEntropy())
}
