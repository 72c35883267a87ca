package ir

// alignPair is one cell of a sequence alignment. AI/BI are indices into the
// two aligned sequences, or -1 when the cell is a gap (no counterpart in
// that sequence).
type alignPair struct {
	AI, BI int
}

// align runs a Needleman-Wunsch alignment over two string sequences using
// +1 match score, 0 mismatch score, and 0 gap score. The path
// through the DP table is reconstructed with a diagonal-then-up-then-left
// tie-break, and the DP table is indexed flat as (i*(n+1)+j) to keep it a
// single allocation.
func align(a, b []string) []alignPair {
	n, m := len(a), len(b)
	width := m + 1
	dp := make([]int, (n+1)*width)

	cell := func(i, j int) int { return i*width + j }

	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			if i == 0 || j == 0 {
				dp[cell(i, j)] = 0
				continue
			}
			score := 0
			if a[i-1] == b[j-1] {
				score = 1
			}
			diag := dp[cell(i-1, j-1)] + score
			up := dp[cell(i-1, j)]
			left := dp[cell(i, j-1)]
			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			dp[cell(i, j)] = best
		}
	}

	var path []alignPair
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && sameScore(a[i-1], b[j-1], dp[cell(i-1, j-1)], dp[cell(i, j)]):
			path = append(path, alignPair{AI: i - 1, BI: j - 1})
			i--
			j--
		case i > 0 && dp[cell(i-1, j)] == dp[cell(i, j)]:
			path = append(path, alignPair{AI: i - 1, BI: -1})
			i--
		case j > 0:
			path = append(path, alignPair{AI: -1, BI: j - 1})
			j--
		default:
			// unreachable given the loop guard, but keeps the traceback total
			i--
		}
	}

	// path was built end-to-front; reverse it in place.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func sameScore(x, y string, diagScore, targetScore int) bool {
	score := 0
	if x == y {
		score = 1
	}
	return diagScore+score == targetScore
}
