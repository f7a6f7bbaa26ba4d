// Package hashutil provides the single 64-bit non-cryptographic hash
// primitive used across harry: token identities, whole-string hashes, and
// the symmetric pair hash used to compare two strings order-independently.
//
// Every hash in this package is seeded with the same fixed constant so that
// results are deterministic across runs and platforms — callers must never
// pass their own seed if they need that guarantee to hold.
package hashutil
