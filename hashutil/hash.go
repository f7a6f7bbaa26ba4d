package hashutil

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Seed is the fixed seed applied to every hash computed by this package.
// Keeping it constant is what makes HashBytes/HashTokens/Combine
// reproducible across runs and machines.
const Seed uint64 = 0xc0ffee

// HashBytes returns the 64-bit hash of a raw byte buffer.
func HashBytes(b []byte) uint64 {
	d := xxhash.NewWithSeed(Seed)
	_, _ = d.Write(b)

	return d.Sum64()
}

// HashTokens returns the 64-bit hash of a token sequence. Tokens are
// little-endian encoded back to bytes before hashing, mirroring the
// original C implementation's `sizeof(sym_t) * len` byte-buffer hash —
// a Tokens payload and a Bytes payload of equal underlying bytes hash
// identically.
func HashTokens(tokens []uint64) uint64 {
	buf := make([]byte, 8*len(tokens))
	for i, t := range tokens {
		binary.LittleEndian.PutUint64(buf[i*8:], t)
	}

	return HashBytes(buf)
}

// Combine folds two hashes into one symmetric result: Combine(a, b) ==
// Combine(b, a) for all a, b. Used to derive a single hash for an unordered
// pair of strings.
func Combine(a, b uint64) uint64 {
	return a ^ b
}
