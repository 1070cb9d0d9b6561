package domain

// peers[i] holds the 20 distinct cells sharing a row, column or box with
// cell i, in ascending index order.
var peers = buildPeers()

// units holds the 27 constraint groups: rows 0-8, columns 9-17, boxes 18-26.
var units = buildUnits()

func buildPeers() [81][20]int {
	var out [81][20]int
	for i := 0; i < 81; i++ {
		r, c := i/9, i%9
		br, bc := (r/3)*3, (c/3)*3
		var seen [81]bool
		for k := 0; k < 9; k++ {
			seen[r*9+k] = true
			seen[k*9+c] = true
		}
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				seen[(br+dr)*9+bc+dc] = true
			}
		}
		seen[i] = false
		n := 0
		for j := 0; j < 81; j++ {
			if seen[j] {
				out[i][n] = j
				n++
			}
		}
	}
	return out
}

func buildUnits() [27][9]int {
	var out [27][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = r*9 + c
			out[9+c][r] = r*9 + c
		}
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for k := 0; k < 9; k++ {
			out[18+b][k] = (br+k/3)*9 + bc + k%3
		}
	}
	return out
}
