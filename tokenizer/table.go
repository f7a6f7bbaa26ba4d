package tokenizer

import "sync"

// Table is a 256-entry byte-class table: flags[b] is true iff byte value b
// is a delimiter. The zero Table is uninitialized.
type Table struct {
	mu          sync.Mutex
	flags       [256]bool
	initialized bool
}

var global Table

// Set initializes the process-wide delimiter table from spec: every byte
// that appears literally in spec is flagged, as is every byte encoded
// "%HH" (two hex digits following a '%'). A truncated '%' sequence at the
// end of spec is ignored. An empty spec is equivalent to Reset.
func Set(spec string) {
	global.Set(spec)
}

// Reset restores the process-wide table to its uninitialized state.
func Reset() {
	global.Reset()
}

// IsSet reports whether the process-wide table has been initialized.
func IsSet() bool {
	return global.IsSet()
}

// Set initializes t from spec. See the package-level Set for the grammar.
func (t *Table) Set(spec string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(spec) == 0 {
		t.reset()

		return
	}

	t.flags = [256]bool{}
	for i := 0; i < len(spec); i++ {
		if spec[i] != '%' {
			t.flags[spec[i]] = true

			continue
		}

		// Truncated escape at end-of-string: ignore it, matching
		// original_source/src/str.c's `if (strlen(s) - i < 2) break;`.
		if len(spec)-i-1 < 2 {
			break
		}

		hi, okHi := hexDigit(spec[i+1])
		lo, okLo := hexDigit(spec[i+2])
		i += 2
		if okHi && okLo {
			t.flags[hi*16+lo] = true
		}
	}
	t.initialized = true
}

// Reset restores t to its uninitialized state.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Table) reset() {
	t.flags = [256]bool{}
	t.initialized = false
}

// IsSet reports whether t has been initialized.
func (t *Table) IsSet() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.initialized
}

// snapshot copies the flags and the initialized state under the lock, so
// TokenizeWith reads one consistent view of t even if Set or Reset runs on
// t concurrently.
func (t *Table) snapshot() ([256]bool, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.flags, t.initialized
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}
