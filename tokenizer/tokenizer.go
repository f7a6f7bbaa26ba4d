package tokenizer

import (
	"github.com/go-harry/harry/hashutil"
	"github.com/go-harry/harry/hstring"
)

// Tokenize converts s (which must be in Bytes form) into a Tokens-form
// String using the process-wide delimiter table. Runs of delimiter bytes
// collapse to a single canonical delimiter (the lowest-valued flagged
// byte); the maximal non-empty runs between canonical delimiters become
// tokens, each the 64-bit hash of that run's bytes. Leading, trailing, and
// collapsed-adjacent empty runs yield no token.
//
// Calling Tokenize on a String that is already in Tokens form is undefined
// per the component contract; this implementation rejects it with
// ErrNotBytes rather than silently re-hashing.
func Tokenize(s hstring.String) (hstring.String, error) {
	return TokenizeWith(&global, s)
}

// TokenizeWith is the same algorithm parameterized over an explicit Table,
// for callers that want isolated (non-global) delimiter state — the
// re-architecture spec.md §9 describes as a clean alternative to the
// process-wide singleton.
func TokenizeWith(t *Table, s hstring.String) (hstring.String, error) {
	if s.Kind != hstring.Bytes {
		return s, ErrNotBytes
	}

	flags, initialized := t.snapshot()
	if !initialized {
		return s, ErrTableNotSet
	}

	canonical := byte(0)
	found := false
	for b := 0; b < 256; b++ {
		if flags[b] {
			canonical = byte(b)
			found = true

			break
		}
	}
	if !found {
		// No delimiter flagged: the whole buffer is a single run/token.
		buf := s.BytesView()
		if len(buf) == 0 {
			return hstring.IntoTokens(s, nil), nil
		}

		return hstring.IntoTokens(s, []uint64{hashutil.HashBytes(buf)}), nil
	}

	return hstring.IntoTokens(s, tokensFromRuns(s.BytesView(), flags, canonical)), nil
}

// tokensFromRuns performs the two-pass collapse-then-split algorithm and
// returns the resulting token sequence.
func tokensFromRuns(src []byte, flags [256]bool, canonical byte) []uint64 {
	// Pass 1: collapse runs of delimiter bytes to a single canonical byte.
	normalized := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if flags[c] {
			if len(normalized) == 0 || flags[normalized[len(normalized)-1]] {
				continue
			}
			normalized = append(normalized, canonical)
		} else {
			normalized = append(normalized, c)
		}
	}

	// Pass 2: split on canonical, hashing each maximal non-empty run.
	j := len(normalized)
	tokens := make([]uint64, 0, j/2+1)
	wstart := 0
	for i := 0; i <= j; i++ {
		atEnd := i == j
		isDelim := !atEnd && normalized[i] == canonical
		if (atEnd || isDelim) && i-wstart > 0 {
			tokens = append(tokens, hashutil.HashBytes(normalized[wstart:i]))
			wstart = i + 1
		} else if isDelim {
			wstart = i + 1
		}
	}

	return tokens
}
