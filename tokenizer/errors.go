package tokenizer

import "errors"

// Sentinel errors for the tokenizer package.
var (
	// ErrTableNotSet is returned by Tokenize when the delimiter table has
	// not been initialized via Set.
	ErrTableNotSet = errors.New("tokenizer: delimiter table is not set")

	// ErrNotBytes is returned by Tokenize when given a String whose Kind
	// is already Tokens; tokenizing twice is undefined per spec, so we
	// reject it outright rather than silently re-hashing token values.
	ErrNotBytes = errors.New("tokenizer: input string is not in Bytes form")
)
