package hstring

// FromBytes constructs a String in Bytes form. src is optional provenance
// metadata retained for output (a label is attached with WithLabel); idx is
// the string's ordinal in the batch.
func FromBytes(idx uint64, src string, bytes []byte) String {
	return String{
		Kind:     Bytes,
		bytesVal: bytes,
		Idx:      idx,
		Src:      src,
	}
}

// FromTokens constructs a String in Tokens form directly, bypassing the
// tokenizer. Used by callers (and tests) that already have token sequences.
func FromTokens(idx uint64, src string, tokens []uint64) String {
	return String{
		Kind:      Tokens,
		tokensVal: tokens,
		Idx:       idx,
		Src:       src,
	}
}

// WithLabel returns a copy of s with Label set and HasLabel true.
func (s String) WithLabel(label float64) String {
	s.Label = label
	s.HasLabel = true

	return s
}

// intoTokens returns a new String sharing s's metadata but holding tokens
// as its payload. Other packages reach it through IntoTokens, whose one
// non-test caller is package tokenizer.
func intoTokens(s String, tokens []uint64) String {
	out := s
	out.Kind = Tokens
	out.bytesVal = nil
	out.tokensVal = tokens

	return out
}

// IntoTokens is the exported hook package tokenizer uses to perform the
// transition; it lives here (rather than as a public constructor) because
// only the tokenizer should call it in practice, and keeping the name
// distinct from FromTokens makes that call site greppable.
func IntoTokens(s String, tokens []uint64) String {
	return intoTokens(s, tokens)
}
