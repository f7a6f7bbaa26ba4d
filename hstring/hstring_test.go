package hstring_test

import (
	"math/rand"
	"testing"

	"github.com/go-harry/harry/hashutil"
	"github.com/go-harry/harry/hstring"
	"github.com/stretchr/testify/require"
)

func TestFromBytesLen(t *testing.T) {
	s := hstring.FromBytes(0, "line:1", []byte("kitten"))
	require.Equal(t, 6, s.Len())
	require.Equal(t, hstring.Bytes, s.Kind)
}

func TestIntoTokensPreservesMetadata(t *testing.T) {
	s := hstring.FromBytes(3, "doc-3", []byte("a b c")).WithLabel(1.0)
	tok := hstring.IntoTokens(s, []uint64{10, 20})

	require.Equal(t, hstring.Tokens, tok.Kind)
	require.Equal(t, uint64(3), tok.Idx)
	require.Equal(t, "doc-3", tok.Src)
	require.True(t, tok.HasLabel)
	require.Equal(t, 1.0, tok.Label)
	require.Empty(t, tok.BytesView(), "BytesView should be empty after transition to Tokens")
}

func TestHash2Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := make([]byte, 1+rng.Intn(64))
		b := make([]byte, 1+rng.Intn(64))
		rng.Read(a)
		rng.Read(b)

		sx := hstring.FromBytes(0, "", a)
		sy := hstring.FromBytes(1, "", b)

		hxy, err := hstring.Hash2(sx, sy)
		require.NoError(t, err)
		hyx, err := hstring.Hash2(sy, sx)
		require.NoError(t, err)
		require.Equal(t, hxy, hyx, "Hash2 not symmetric for %x, %x", a, b)
	}
}

func TestHash2MixedKindIsUsageError(t *testing.T) {
	bs := hstring.FromBytes(0, "", []byte("abc"))
	ts := hstring.FromTokens(1, "", []uint64{1, 2, 3})

	h, err := hstring.Hash2(bs, ts)
	require.ErrorIs(t, err, hstring.ErrMixedKind)
	require.Zero(t, h, "h should be the sentinel 0 on error")
}

func TestHash1MatchesHashutil(t *testing.T) {
	s := hstring.FromBytes(0, "", []byte("sitting"))
	require.Equal(t, hashutil.HashBytes([]byte("sitting")), s.Hash1(),
		"Hash1 should delegate to hashutil.HashBytes for Bytes payloads")
}
