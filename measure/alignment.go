package measure

import "github.com/go-harry/harry/hstring"

func init() {
	register(Entry{Name: "needlemanwunsch", Configure: alignConfigure, Compare: needlemanWunschCompare})
	register(Entry{Name: "smithwaterman", Configure: alignConfigure, Compare: smithWatermanCompare})
}

func alignConfigure(opts *Options) {
	if opts.MatchScore == 0 {
		opts.MatchScore = 1
	}
	if opts.MismatchCost == 0 {
		opts.MismatchCost = 1
	}
	if opts.GapCost == 0 {
		opts.GapCost = 1
	}
}

// needlemanWunschCompare computes the global alignment score between x and
// y: a match contributes +MatchScore, a substitution -MismatchCost, and a
// gap -GapCost, maximized over every full alignment of both sequences.
func needlemanWunschCompare(x, y hstring.String, opts *Options) float64 {
	a, b := symbols(x), symbols(y)
	n, m := len(a), len(b)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = -opts.GapCost * float64(j)
	}

	for i := 1; i <= n; i++ {
		curr[0] = -opts.GapCost * float64(i)
		for j := 1; j <= m; j++ {
			score := -opts.MismatchCost
			if a[i-1] == b[j-1] {
				score = opts.MatchScore
			}
			curr[j] = maxFloat3(
				prev[j-1]+score,
				prev[j]-opts.GapCost,
				curr[j-1]-opts.GapCost,
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// smithWatermanCompare computes the best local alignment score: the same
// recurrence as Needleman-Wunsch but clamped to zero, so a poor alignment
// never drags the score below restarting from scratch.
func smithWatermanCompare(x, y hstring.String, opts *Options) float64 {
	a, b := symbols(x), symbols(y)
	n, m := len(a), len(b)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	best := 0.0

	for i := 1; i <= n; i++ {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			score := -opts.MismatchCost
			if a[i-1] == b[j-1] {
				score = opts.MatchScore
			}
			curr[j] = maxFloat4(
				0,
				prev[j-1]+score,
				prev[j]-opts.GapCost,
				curr[j-1]-opts.GapCost,
			)
			if curr[j] > best {
				best = curr[j]
			}
		}
		prev, curr = curr, prev
	}

	return best
}

func maxFloat3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}

func maxFloat4(a, b, c, d float64) float64 {
	return maxFloat3(maxFloat3(a, b, c), d, d)
}
