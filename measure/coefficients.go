package measure

import (
	"math"

	"github.com/go-harry/harry/hstring"
)

func init() {
	register(Entry{Name: "jaccard", Compare: jaccardCompare})
	register(Entry{Name: "simpson", Compare: simpsonCompare})
	register(Entry{Name: "braun", Compare: braunCompare})
	register(Entry{Name: "dice", Compare: diceCompare})
	register(Entry{Name: "sokal", Compare: sokalCompare})
	register(Entry{Name: "kulczynski", Compare: kulczynskiCompare})
	register(Entry{Name: "otsuka", Compare: otsukaCompare})
}

// matchCounts mirrors original_source/src/measures/sim_coefficient.h's
// match_t{a,b,c}: a is the size of the symbol intersection (as sets, not
// multisets), b the symbols only in x, c the symbols only in y.
type matchCounts struct {
	a, b, c float64
}

func coefficients(x, y hstring.String) matchCounts {
	xSet := toSet(symbols(x))
	ySet := toSet(symbols(y))

	var mc matchCounts
	for s := range xSet {
		if ySet[s] {
			mc.a++
		} else {
			mc.b++
		}
	}
	for s := range ySet {
		if !xSet[s] {
			mc.c++
		}
	}

	return mc
}

func toSet(symbols []uint64) map[uint64]bool {
	set := make(map[uint64]bool, len(symbols))
	for _, s := range symbols {
		set[s] = true
	}

	return set
}

// jaccardCompare returns |X∩Y| / |X∪Y|.
func jaccardCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	denom := mc.a + mc.b + mc.c
	if denom == 0 {
		return 1
	}

	return mc.a / denom
}

// simpsonCompare (overlap coefficient) returns |X∩Y| / min(|X|,|Y|).
func simpsonCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	denom := math.Min(mc.a+mc.b, mc.a+mc.c)
	if denom == 0 {
		return 1
	}

	return mc.a / denom
}

// braunCompare (Braun-Blanquet) returns |X∩Y| / max(|X|,|Y|).
func braunCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	denom := math.Max(mc.a+mc.b, mc.a+mc.c)
	if denom == 0 {
		return 1
	}

	return mc.a / denom
}

// diceCompare returns 2|X∩Y| / (|X|+|Y|).
func diceCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	denom := 2*mc.a + mc.b + mc.c
	if denom == 0 {
		return 1
	}

	return 2 * mc.a / denom
}

// sokalCompare (Sokal-Sneath) returns |X∩Y| / (|X∩Y| + 2(|X\Y|+|Y\X|)).
func sokalCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	denom := mc.a + 2*(mc.b+mc.c)
	if denom == 0 {
		return 1
	}

	return mc.a / denom
}

// kulczynskiCompare returns the mean of |X∩Y|/|X| and |X∩Y|/|Y|
// (Kulczynski's second coefficient).
func kulczynskiCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	if mc.a+mc.b == 0 || mc.a+mc.c == 0 {
		if mc.a == 0 {
			return 0
		}

		return 1
	}

	return 0.5 * (mc.a/(mc.a+mc.b) + mc.a/(mc.a+mc.c))
}

// otsukaCompare returns |X∩Y| / sqrt(|X|·|Y|), the cosine similarity of
// the two symbol sets' indicator vectors.
func otsukaCompare(x, y hstring.String, _ *Options) float64 {
	mc := coefficients(x, y)
	denom := math.Sqrt((mc.a + mc.b) * (mc.a + mc.c))
	if denom == 0 {
		return 1
	}

	return mc.a / denom
}
