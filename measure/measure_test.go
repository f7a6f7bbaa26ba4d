package measure

import (
	"testing"

	"github.com/go-harry/harry/hstring"
	"github.com/stretchr/testify/require"
)

func bytesStr(idx uint64, s string) hstring.String {
	return hstring.FromBytes(idx, s, []byte(s))
}

func TestNewRegistryDefaultsToLevenshtein(t *testing.T) {
	r := New()
	require.Equal(t, DefaultMeasure, r.Active())
}

func TestConfigureUnknownFallsBack(t *testing.T) {
	r := New()
	err := r.Configure("not-a-real-measure")
	require.ErrorIs(t, err, ErrUnknownMeasure)
	require.Equal(t, DefaultMeasure, r.Active(), "Active() after unknown Configure should fall back")
}

func TestConfigureKnownSelectsMeasure(t *testing.T) {
	r := New()
	require.NoError(t, r.Configure("jaccard"))
	require.Equal(t, "jaccard", r.Active())
}

func TestNamesIncludesEveryBuiltin(t *testing.T) {
	want := []string{
		"hamming", "levenshtein", "damerau", "osa", "jaro", "jarowinkler", "lee",
		"needlemanwunsch", "smithwaterman",
		"jaccard", "simpson", "braun", "dice", "sokal", "kulczynski", "otsuka",
		"spectrum", "subsequence", "bag", "distsubst", "dtw",
	}
	names := New().Names()
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, w := range want {
		require.True(t, set[w], "Names() missing %q", w)
	}
}

// TestLevenshteinScenarioE1 reproduces spec.md §8 scenario E1: comparing
// "kitten" against "sitting", "kitten", "kitten" yields distances 3, 0, 0.
func TestLevenshteinScenarioE1(t *testing.T) {
	kitten := bytesStr(0, "kitten")
	inputs := []hstring.String{
		bytesStr(1, "sitting"),
		bytesStr(2, "kitten"),
		bytesStr(3, "kitten"),
	}
	want := []float64{3, 0, 0}

	r := New()
	for i, in := range inputs {
		require.Equal(t, want[i], r.Compare(kitten, in), "Levenshtein(kitten, %q)", in.Src)
	}
}

// TestJaccardScenarioE2 reproduces spec.md §8 scenario E2: tokenized
// "a b c" vs "b c d" under Jaccard.
func TestJaccardScenarioE2(t *testing.T) {
	a := hstring.FromTokens(0, "a b c", []uint64{1, 2, 3})
	b := hstring.FromTokens(1, "b c d", []uint64{2, 3, 4})

	r := New()
	require.NoError(t, r.Configure("jaccard"))

	require.Equal(t, 1.0, r.Compare(a, a))
	require.Equal(t, 0.5, r.Compare(a, b))
	require.Equal(t, 1.0, r.Compare(b, b))
}

func TestHammingPadsLengthDifference(t *testing.T) {
	x := bytesStr(0, "abc")
	y := bytesStr(1, "abd")
	require.Equal(t, 1.0, hammingCompare(x, y, nil))

	y2 := bytesStr(2, "ab")
	require.Equal(t, 1.0, hammingCompare(x, y2, nil), "0 mismatches + 1 length diff")
}

func TestDamerauTranspositionCheaperThanTwoSubs(t *testing.T) {
	x := bytesStr(0, "ab")
	y := bytesStr(1, "ba")
	require.Equal(t, 1.0, damerauCompare(x, y, nil), "single transposition")
}

func TestJaroIdenticalIsOne(t *testing.T) {
	x := bytesStr(0, "martha")
	require.Equal(t, 1.0, jaroCompare(x, x, nil))
}

func TestJaroWinklerBoostsSharedPrefix(t *testing.T) {
	opts := DefaultOptions()
	x := bytesStr(0, "dixon")
	y := bytesStr(1, "dicksonx")

	jw := jaroWinklerCompare(x, y, &opts)
	j := jaroCompare(x, y, &opts)
	require.GreaterOrEqual(t, jw, j, "winkler boost should not reduce similarity")
}

func TestNeedlemanWunschIdenticalMaximal(t *testing.T) {
	opts := DefaultOptions()
	x := bytesStr(0, "abcd")
	want := opts.MatchScore * 4
	require.Equal(t, want, needlemanWunschCompare(x, x, &opts))
}

func TestSmithWatermanFindsLocalMatch(t *testing.T) {
	opts := DefaultOptions()
	x := bytesStr(0, "zzzabcdzzz")
	y := bytesStr(1, "abcd")
	want := opts.MatchScore * 4
	require.Equal(t, want, smithWatermanCompare(x, y, &opts), "best local run")
}

func TestCoefficientsAgreeOnIdenticalSets(t *testing.T) {
	a := hstring.FromTokens(0, "x", []uint64{1, 2, 3})
	for _, fn := range []CompareFunc{
		jaccardCompare, simpsonCompare, braunCompare, diceCompare,
		sokalCompare, kulczynskiCompare, otsukaCompare,
	} {
		require.Equal(t, 1.0, fn(a, a, nil))
	}
}

func TestCoefficientsOnDisjointSets(t *testing.T) {
	a := hstring.FromTokens(0, "x", []uint64{1, 2})
	b := hstring.FromTokens(1, "y", []uint64{3, 4})
	require.Equal(t, 0.0, jaccardCompare(a, b, nil))
	require.Equal(t, 0.0, diceCompare(a, b, nil))
}

func TestSpectrumKernelCountsSharedKmers(t *testing.T) {
	opts := DefaultOptions()
	opts.KernelOrder = 2
	x := bytesStr(0, "abcabc")
	require.Greater(t, spectrumCompare(x, x, &opts), 0.0)
}

func TestBagKernelSymmetric(t *testing.T) {
	x := bytesStr(0, "aab")
	y := bytesStr(1, "aba")
	require.Equal(t, bagCompare(x, y, nil), bagCompare(y, x, nil), "bagCompare must be symmetric")
}

func TestSubsequenceKernelOrderOneIsMatchCount(t *testing.T) {
	opts := DefaultOptions()
	opts.KernelOrder = 1
	opts.Lambda = 0.5
	x := bytesStr(0, "ab")
	y := bytesStr(1, "ab")

	got := subsequenceCompare(x, y, &opts)
	want := opts.Lambda * opts.Lambda * 2 // two matching symbol pairs: (a,a), (b,b)
	require.InDelta(t, want, got, 1e-9)
}

func TestSubsequenceKernelShorterThanOrderIsZero(t *testing.T) {
	opts := DefaultOptions()
	opts.KernelOrder = 5
	x := bytesStr(0, "ab")
	y := bytesStr(1, "abcdef")
	require.Equal(t, 0.0, subsequenceCompare(x, y, &opts))
}

func TestDistSubstIdenticalIsOne(t *testing.T) {
	opts := DefaultOptions()
	x := bytesStr(0, "same")
	require.Equal(t, 1.0, distSubstCompare(x, x, &opts))
}

func TestLeeCircularDistance(t *testing.T) {
	opts := DefaultOptions()
	opts.AlphabetSize = 10
	x := hstring.FromTokens(0, "x", []uint64{0})
	y := hstring.FromTokens(1, "y", []uint64{9})
	// |0-9| = 9, circular distance min(9, 10-9) = 1.
	require.Equal(t, 1.0, leeCompare(x, y, &opts))
}

func TestDTWMeasureIdenticalIsZero(t *testing.T) {
	opts := DefaultOptions()
	x := bytesStr(0, "abcdef")
	require.Equal(t, 0.0, dtwCompare(x, x, &opts))
}

func TestDTWMeasureEmptyVsEmptyIsZero(t *testing.T) {
	opts := DefaultOptions()
	x := hstring.FromTokens(0, "", nil)
	require.Equal(t, 0.0, dtwCompare(x, x, &opts))
}

func TestDTWMeasureAsymmetricLengthCostsGapPenalty(t *testing.T) {
	opts := DefaultOptions()
	opts.GapCost = 2
	x := hstring.FromTokens(0, "", nil)
	y := hstring.FromTokens(1, "y", []uint64{1, 2, 3})
	require.Equal(t, 6.0, dtwCompare(x, y, &opts), "3 gap steps at GapCost=2")
}

func TestSymbolsWidensBytesAndTokens(t *testing.T) {
	b := bytesStr(0, "ab")
	require.Equal(t, []uint64{uint64('a'), uint64('b')}, symbols(b))

	tk := hstring.FromTokens(1, "x", []uint64{10, 20})
	require.Equal(t, []uint64{10, 20}, symbols(tk))
}
