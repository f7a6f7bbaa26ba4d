package hashutil_test

import (
	"math/rand"
	"testing"

	"github.com/go-harry/harry/hashutil"
	"github.com/stretchr/testify/require"
)

func TestHashBytesDeterministic(t *testing.T) {
	b := []byte("kitten")
	require.Equal(t, hashutil.HashBytes(b), hashutil.HashBytes([]byte("kitten")))
}

func TestCombineSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a := make([]byte, 1+rng.Intn(64))
		b := make([]byte, 1+rng.Intn(64))
		rng.Read(a)
		rng.Read(b)

		ha, hb := hashutil.HashBytes(a), hashutil.HashBytes(b)
		require.Equal(t, hashutil.Combine(ha, hb), hashutil.Combine(hb, ha), "Combine(%x, %x)", a, b)
	}
}

func TestHashTokensDeterministicAndOrderSensitive(t *testing.T) {
	tokens := []uint64{1, 2, 3}
	h1 := hashutil.HashTokens(tokens)
	h2 := hashutil.HashTokens([]uint64{1, 2, 3})
	require.Equal(t, h1, h2, "HashTokens should be deterministic for equal token sequences")

	h3 := hashutil.HashTokens([]uint64{3, 2, 1})
	require.NotEqual(t, h1, h3, "HashTokens should be order-sensitive")
}
