package measure

import (
	"math"

	"github.com/go-harry/harry/hstring"
)

func init() {
	register(Entry{Name: "spectrum", Configure: kernelConfigure, Compare: spectrumCompare})
	register(Entry{Name: "subsequence", Configure: kernelConfigure, Compare: subsequenceCompare})
	register(Entry{Name: "bag", Compare: bagCompare})
	register(Entry{Name: "distsubst", Configure: distSubstConfigure, Compare: distSubstCompare})
}

func kernelConfigure(opts *Options) {
	if opts.KernelOrder <= 0 {
		opts.KernelOrder = 3
	}
	if opts.Lambda <= 0 || opts.Lambda > 1 {
		opts.Lambda = 0.5
	}
}

// kmerCounts returns the frequency of every contiguous length-k run of
// symbols in s.
func kmerCounts(s []uint64, k int) map[string]float64 {
	counts := make(map[string]float64)
	if k <= 0 || len(s) < k {
		return counts
	}
	for i := 0; i+k <= len(s); i++ {
		counts[kmerKey(s[i:i+k])]++
	}

	return counts
}

func kmerKey(window []uint64) string {
	buf := make([]byte, 8*len(window))
	for i, v := range window {
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(v >> (8 * b))
		}
	}

	return string(buf)
}

// spectrumCompare computes the (unnormalized) spectrum kernel: the dot
// product of the two strings' k-mer frequency vectors, for k =
// opts.KernelOrder.
func spectrumCompare(x, y hstring.String, opts *Options) float64 {
	ax := kmerCounts(symbols(x), opts.KernelOrder)
	ay := kmerCounts(symbols(y), opts.KernelOrder)

	return dotProduct(ax, ay)
}

func dotProduct(a, b map[string]float64) float64 {
	// Iterate the smaller map for efficiency; correctness doesn't depend
	// on which side we iterate.
	if len(b) < len(a) {
		a, b = b, a
	}

	sum := 0.0
	for k, va := range a {
		if vb, ok := b[k]; ok {
			sum += va * vb
		}
	}

	return sum
}

// bagCompare computes the bag-of-symbols kernel: the dot product of the
// two strings' per-symbol frequency vectors (a degenerate spectrum kernel
// with k=1, kept distinct since it never re-reads KernelOrder).
func bagCompare(x, y hstring.String, _ *Options) float64 {
	ax := make(map[uint64]float64)
	for _, s := range symbols(x) {
		ax[s]++
	}
	ay := make(map[uint64]float64)
	for _, s := range symbols(y) {
		ay[s]++
	}

	sum := 0.0
	for s, va := range ax {
		if vb, ok := ay[s]; ok {
			sum += va * vb
		}
	}

	return sum
}

// subsequenceCompare computes a length-bounded string subsequence kernel:
// the Lambda-decayed count of common (possibly non-contiguous) subsequences
// of length opts.KernelOrder, following the recursive formulation of
// Lodhi et al.'s string subsequence kernel. K'_l is the "open" recursion
// (gaps before and after may still grow); K'_0 is 1 everywhere, and the
// final kernel value sums lambda^2 * K'_{k-1} over every matching
// (a_i, b_j) pair.
func subsequenceCompare(x, y hstring.String, opts *Options) float64 {
	a, b := symbols(x), symbols(y)
	k := opts.KernelOrder
	n, m := len(a), len(b)
	if k <= 0 || n < k || m < k {
		return 0
	}

	lambda := opts.Lambda
	lambda2 := lambda * lambda

	prev := newOnesMatrix(n+1, m+1) // K'_0

	for l := 1; l < k; l++ {
		kp := make([][]float64, n+1)
		for i := range kp {
			kp[i] = make([]float64, m+1)
		}
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				term := lambda*kp[i-1][j] + lambda*kp[i][j-1] - lambda2*kp[i-1][j-1]
				if a[i-1] == b[j-1] {
					term += lambda2 * prev[i-1][j-1]
				}
				kp[i][j] = term
			}
		}
		prev = kp
	}

	result := 0.0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				result += lambda2 * prev[i-1][j-1]
			}
		}
	}

	return result
}

func newOnesMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = 1
		}
	}

	return m
}

func distSubstConfigure(opts *Options) {
	if opts.Sigma <= 0 {
		opts.Sigma = 1
	}
}

// distSubstCompare wraps Levenshtein distance through a kernel
// substitution: similarity = exp(-distance / Sigma), turning any distance
// measure into a bounded (0, 1] similarity.
func distSubstCompare(x, y hstring.String, opts *Options) float64 {
	d := levenshteinCompare(x, y, opts)

	return math.Exp(-d / opts.Sigma)
}
