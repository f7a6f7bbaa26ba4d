package measure

import (
	"math"

	"github.com/go-harry/harry/hstring"
)

func init() {
	register(Entry{Name: "dtw", Configure: dtwConfigure, Compare: dtwCompare})
}

func dtwConfigure(opts *Options) {
	if opts.GapCost < 0 {
		opts.GapCost = 0
	}
}

// dtwCompare computes the Dynamic Time Warping distance between two
// strings' widened symbol sequences, using the same rolling two-row DP
// idiom as levenshteinCompare: row i only ever reads row i-1 and the
// cells of row i already filled, so the full (n+1)x(m+1) matrix never
// needs to be materialized. GapCost is the insertion/deletion penalty
// for a step that advances one sequence without the other (the
// warping path's horizontal/vertical moves).
func dtwCompare(x, y hstring.String, opts *Options) float64 {
	a, b := symbols(x), symbols(y)
	n, m := len(a), len(b)

	penalty := opts.GapCost

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = penalty * float64(j)
	}

	for i := 1; i <= n; i++ {
		curr[0] = penalty * float64(i)
		for j := 1; j <= m; j++ {
			cost := math.Abs(float64(a[i-1]) - float64(b[j-1]))
			best := minFloat3(
				prev[j-1],         // match/substitute
				prev[j]+penalty,   // advance a, hold b
				curr[j-1]+penalty, // advance b, hold a
			)
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func minFloat3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
