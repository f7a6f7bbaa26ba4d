package hstring

import "github.com/go-harry/harry/hashutil"

// Hash1 returns the 64-bit hash of s's current payload: a byte-sequence
// hash when Kind == Bytes, a token-sequence hash when Kind == Tokens.
func (s String) Hash1() uint64 {
	if s.Kind == Tokens {
		return hashutil.HashTokens(s.tokensVal)
	}

	return hashutil.HashBytes(s.bytesVal)
}

// Hash2 returns the symmetric combined hash of x and y: Hash2(x, y) ==
// Hash2(y, x). Hashing strings of different Kind is a usage error that
// returns ErrMixedKind alongside the sentinel value 0.
func Hash2(x, y String) (uint64, error) {
	if x.Kind != y.Kind {
		return 0, ErrMixedKind
	}

	return hashutil.Combine(x.Hash1(), y.Hash1()), nil
}
