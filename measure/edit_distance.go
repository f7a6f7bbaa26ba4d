package measure

import (
	"math"

	"github.com/go-harry/harry/hstring"
)

func init() {
	register(Entry{Name: "hamming", Compare: hammingCompare})
	register(Entry{Name: "levenshtein", Compare: levenshteinCompare})
	register(Entry{Name: "damerau", Compare: damerauCompare})
	register(Entry{Name: "osa", Compare: osaCompare})
	register(Entry{Name: "jaro", Compare: jaroCompare})
	register(Entry{Name: "jarowinkler", Compare: jaroWinklerCompare})
	register(Entry{Name: "lee", Configure: leeConfigure, Compare: leeCompare})
}

// hammingCompare counts mismatches position-by-position up to the shorter
// length, plus the absolute length difference for the unmatched tail.
func hammingCompare(x, y hstring.String, _ *Options) float64 {
	a, b := symbols(x), symbols(y)
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	dist := 0.0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			dist++
		}
	}

	return dist + math.Abs(float64(len(a)-len(b)))
}

// levenshteinCompare computes classic single-character insert/delete/
// substitute edit distance with a rolling two-row DP, the same idiom the
// teacher's dtw package uses for its alignment recurrence.
func levenshteinCompare(x, y hstring.String, _ *Options) float64 {
	a, b := symbols(x), symbols(y)
	n, m := len(a), len(b)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution/match
			)
		}
		prev, curr = curr, prev
	}

	return float64(prev[m])
}

// osaCompare computes Optimal String Alignment distance: Levenshtein plus
// adjacent-transposition as a fourth operation, each substring edited at
// most once (no mid-transposition substitutions).
func osaCompare(x, y hstring.String, _ *Options) float64 {
	a, b := symbols(x), symbols(y)
	n, m := len(a), len(b)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d[i][j] = minInt3(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d[i][j] = minInt(d[i][j], d[i-2][j-2]+1)
			}
		}
	}

	return float64(d[n][m])
}

// damerauCompare computes true (unrestricted) Damerau-Levenshtein
// distance, allowing a transposed substring to be edited again afterward.
func damerauCompare(x, y hstring.String, _ *Options) float64 {
	a, b := symbols(x), symbols(y)
	n, m := len(a), len(b)

	maxDist := n + m
	da := make(map[uint64]int)

	d := make([][]int, n+2)
	for i := range d {
		d[i] = make([]int, m+2)
	}
	d[0][0] = maxDist
	for i := 0; i <= n; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	for i := 1; i <= n; i++ {
		db := 0
		for j := 1; j <= m; j++ {
			k := da[b[j-1]]
			l := db
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
				db = j
			}
			d[i+1][j+1] = minInt4(
				d[i][j]+cost,
				d[i+1][j]+1,
				d[i][j+1]+1,
				d[k][l]+(i-k-1)+1+(j-l-1),
			)
		}
		da[a[i-1]] = i
	}

	return float64(d[n+1][m+1])
}

// jaroCompare computes the Jaro similarity in [0, 1]; 1 means identical.
func jaroCompare(x, y hstring.String, _ *Options) float64 {
	a, b := symbols(x), symbols(y)
	return jaroSimilarity(a, b)
}

func jaroSimilarity(a, b []uint64) float64 {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return 1
	}
	if n == 0 || m == 0 {
		return 0
	}

	matchDist := maxInt(n, m)/2 - 1
	if matchDist < 0 {
		matchDist = 0
	}

	aMatched := make([]bool, n)
	bMatched := make([]bool, m)
	matches := 0

	for i := 0; i < n; i++ {
		lo := maxInt(0, i-matchDist)
		hi := minInt(m-1, i+matchDist)
		for j := lo; j <= hi; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++

			break
		}
	}

	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < n; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}
	t := float64(transpositions) / 2

	mf := float64(matches)

	return (mf/float64(n) + mf/float64(m) + (mf-t)/mf) / 3
}

// jaroWinklerCompare boosts the Jaro similarity for strings that share a
// common prefix (up to 4 symbols), weighted by a fixed scaling factor.
func jaroWinklerCompare(x, y hstring.String, _ *Options) float64 {
	a, b := symbols(x), symbols(y)
	j := jaroSimilarity(a, b)

	prefix := 0
	maxPrefix := minInt(4, minInt(len(a), len(b)))
	for prefix < maxPrefix && a[prefix] == b[prefix] {
		prefix++
	}

	const scalingFactor = 0.1

	return j + float64(prefix)*scalingFactor*(1-j)
}

func leeConfigure(opts *Options) {
	if opts.AlphabetSize <= 0 {
		opts.AlphabetSize = 256
	}
}

// leeCompare computes the Lee distance: the sum, over aligned positions,
// of the circular difference min(|a_i-b_i|, q-|a_i-b_i|) under an
// alphabet of size q. Extra trailing positions in the longer string are
// compared against zero.
func leeCompare(x, y hstring.String, opts *Options) float64 {
	a, b := symbols(x), symbols(y)
	q := int64(opts.AlphabetSize)
	if q <= 0 {
		q = 256
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	total := 0.0
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = int64(a[i])
		}
		if i < len(b) {
			bv = int64(b[i])
		}
		diff := av - bv
		if diff < 0 {
			diff = -diff
		}
		if q-diff < diff {
			diff = q - diff
		}
		total += float64(diff)
	}

	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt3(a, b, c int) int {
	return minInt(minInt(a, b), c)
}

func minInt4(a, b, c, d int) int {
	return minInt(minInt(a, b), minInt(c, d))
}
