package measure

import "github.com/go-harry/harry/hstring"

// symbols widens s's payload to a uniform []uint64 view so the same
// algorithm body works whether s holds bytes or tokens: a Bytes payload's
// elements are its individual byte values, a Tokens payload's elements are
// already uint64 token identities.
func symbols(s hstring.String) []uint64 {
	if s.Kind == hstring.Tokens {
		return s.TokensView()
	}

	b := s.BytesView()
	out := make([]uint64, len(b))
	for i, c := range b {
		out[i] = uint64(c)
	}

	return out
}
