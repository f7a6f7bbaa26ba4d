package simmatrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-harry/harry/hstring"
)

// Init captures N and per-string Labels/Srcs from batch and returns a
// Matrix with full default ranges ([0,N) × [0,N)) and Triangular = true.
// The backing store is not yet allocated; call Allocate once ranges (and
// any Split) are configured.
func Init(batch []hstring.String) *Matrix {
	n := len(batch)
	m := &Matrix{
		Num:        n,
		X:          Range{I: 0, N: n},
		Y:          Range{I: 0, N: n},
		Triangular: true,
		Labels:     make([]float64, n),
		Srcs:       make([]string, n),
	}
	for i, s := range batch {
		m.Labels[i] = s.Label
		m.Srcs[i] = s.Src
	}

	return m
}

// parseRange parses spec of the form "a:b" against maximum n, following
// spec.md §6's grammar: a missing left int means 0, a missing right int
// means n, and a negative right int means n+value. On any parse failure or
// out-of-bounds result, it returns the full range (0, n) and a non-nil
// error — callers revert to that full range per spec.md §7's Usage class.
func parseRange(spec string, n int) (Range, error) {
	full := Range{I: 0, N: n}

	if len(spec) == 0 {
		return full, nil
	}

	idx := strings.IndexByte(spec, ':')
	if idx < 0 {
		return full, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
	}

	leftStr, rightStr := spec[:idx], spec[idx+1:]

	i := 0
	if len(leftStr) > 0 {
		v, err := strconv.Atoi(leftStr)
		if err != nil {
			return full, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
		}
		i = v
	}

	end := n
	if len(rightStr) > 0 {
		v, err := strconv.Atoi(rightStr)
		if err != nil {
			return full, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
		}
		end = v
	}
	if end < 0 {
		end = n + end
	}

	if i < 0 || end > n || i >= end {
		return full, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
	}

	return Range{I: i, N: end}, nil
}

// SetXRange parses spec against m.Num and, on success, replaces m.X.
// On failure m.X reverts to the full range [0, Num) and the error is
// returned for the caller to log as a warning (spec.md §7, Usage class).
func (m *Matrix) SetXRange(spec string) error {
	r, err := parseRange(spec, m.Num)
	m.X = r

	return err
}

// SetYRange parses spec against m.Num and, on success, replaces m.Y.
// See SetXRange for failure handling.
func (m *Matrix) SetYRange(spec string) error {
	r, err := parseRange(spec, m.Num)
	m.Y = r

	return err
}

// Split parses spec of the form "blocks:index" and narrows m.Y to the
// index-th of blocks equal-height horizontal strips of the current Y
// range. blocks <= 0, blocks greater than the current Y height, a
// resulting non-positive height, or index outside [0, blocks) are Fatal
// errors per spec.md §7 — the matrix is left unmodified and the caller
// must abort the process.
func (m *Matrix) Split(spec string) error {
	idx := strings.IndexByte(spec, ':')
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSplitSyntax, spec)
	}

	blocks, err1 := strconv.Atoi(spec[:idx])
	index, err2 := strconv.Atoi(spec[idx+1:])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("%w: %q", ErrSplitSyntax, spec)
	}

	yHeight := m.Y.Len()
	if blocks <= 0 || blocks > yHeight {
		return fmt.Errorf("%w: blocks=%d", ErrSplitOutOfRange, blocks)
	}

	height := (yHeight + blocks - 1) / blocks // ceil(yHeight/blocks)
	if height <= 0 {
		return fmt.Errorf("%w: computed block height %d", ErrSplitOutOfRange, height)
	}
	if index < 0 || index >= blocks {
		return fmt.Errorf("%w: index=%d", ErrSplitOutOfRange, index)
	}

	newI := m.Y.I + index*height
	newN := m.Y.I + (index+1)*height
	if newN > m.Y.N {
		newN = m.Y.N
	}
	m.Y = Range{I: newI, N: newN}

	return nil
}

// Allocate finalizes m.Triangular (true iff X == Y), computes Size per the
// triangular or rectangular formula, and zero-initializes the backing
// store. It must be called exactly once, after ranges and any Split are
// configured and before any Get/Set.
func (m *Matrix) Allocate() error {
	m.Triangular = m.X == m.Y

	xl, yl := m.X.Len(), m.Y.Len()
	if m.Triangular {
		m.Size = xl*(xl+1)/2
	} else {
		m.Size = xl * yl
	}

	if m.Size < 0 {
		return ErrAlloc
	}

	m.values = make([]float64, m.Size)

	return nil
}
