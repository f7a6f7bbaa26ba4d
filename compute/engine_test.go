package compute

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-harry/harry/hstring"
	"github.com/go-harry/harry/measure"
	"github.com/go-harry/harry/simmatrix"
)

func testBatch() []hstring.String {
	words := []string{"kitten", "sitting", "kitten", "bitten"}
	batch := make([]hstring.String, len(words))
	for i, w := range words {
		batch[i] = hstring.FromBytes(uint64(i), w, []byte(w))
	}

	return batch
}

func TestRunFillsTriangularMatrixSymmetrically(t *testing.T) {
	batch := testBatch()
	m := simmatrix.Init(batch)
	require.NoError(t, m.Allocate())

	reg := measure.New()
	stats, err := Run(context.Background(), m, batch, reg, DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)
	require.Greater(t, stats.Cells, 0)

	for x := 0; x < len(batch); x++ {
		for y := 0; y < len(batch); y++ {
			got, err := m.Get(x, y)
			require.NoError(t, err)
			want, err := m.Get(y, x)
			require.NoError(t, err)
			require.Equal(t, want, got, "Get(%d,%d) vs Get(%d,%d) should be symmetric", x, y, y, x)
		}
	}

	// Diagonal: identical strings are Levenshtein distance 0.
	d, err := m.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, d, "identical self-comparison")

	d, err = m.Get(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, d, "kitten vs kitten")
}

func TestRunRectangularMatrix(t *testing.T) {
	batch := testBatch()
	m := simmatrix.Init(batch)
	require.NoError(t, m.SetXRange("0:2"))
	require.NoError(t, m.SetYRange("2:4"))
	require.NoError(t, m.Allocate())
	require.False(t, m.Triangular, "expected false for disjoint X/Y ranges")

	reg := measure.New()
	_, err := Run(context.Background(), m, batch, reg, DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	// (0,2) = levenshtein(kitten, kitten) = 0.
	d, err := m.Get(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestRunEmptyBatchErrors(t *testing.T) {
	m := simmatrix.Init(nil)
	require.NoError(t, m.Allocate())
	reg := measure.New()
	_, err := Run(context.Background(), m, nil, reg, DefaultOptions(), zerolog.Nop())
	require.ErrorIs(t, err, ErrNoBatch)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	words := make([]string, 200)
	for i := range words {
		words[i] = "some-moderately-long-string-value"
	}
	batch := make([]hstring.String, len(words))
	for i, w := range words {
		batch[i] = hstring.FromBytes(uint64(i), w, []byte(w))
	}

	m := simmatrix.Init(batch)
	require.NoError(t, m.Allocate())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := measure.New()
	opts := DefaultOptions()
	opts.Workers = 4
	_, err := Run(ctx, m, batch, reg, opts, zerolog.Nop())
	require.Error(t, err, "Run() with a pre-canceled context should fail")
}

func TestRunUsesConfiguredMeasure(t *testing.T) {
	a := hstring.FromTokens(0, "a b c", []uint64{1, 2, 3})
	b := hstring.FromTokens(1, "b c d", []uint64{2, 3, 4})
	batch := []hstring.String{a, b}

	m := simmatrix.Init(batch)
	require.NoError(t, m.Allocate())

	reg := measure.New()
	require.NoError(t, reg.Configure("jaccard"))

	opts := DefaultOptions()
	opts.ReportEvery = 0
	_, err := Run(context.Background(), m, batch, reg, opts, zerolog.Nop())
	require.NoError(t, err)

	got, err := m.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.5, got)
}

func TestRunReportsElapsed(t *testing.T) {
	batch := testBatch()
	m := simmatrix.Init(batch)
	require.NoError(t, m.Allocate())
	reg := measure.New()
	stats, err := Run(context.Background(), m, batch, reg, DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.Elapsed, time.Duration(0))
	require.LessOrEqual(t, stats.Elapsed, time.Minute, "expected a small elapsed duration")
}
