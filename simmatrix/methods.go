package simmatrix

// index computes the flat storage offset for logical coordinate (x, y).
// Both Get and Set call this single implementation, which is the
// corrected formula of spec.md §9: original_source/src/hmatrix.c's
// hmatrix_get computed xl as `m->x.n - m->y.i` (a copy-paste bug) while
// hmatrix_set correctly used `m->x.n - m->x.i`. Sharing one function here
// makes that class of drift impossible to reintroduce.
func (m *Matrix) index(x, y int) (int, error) {
	if x < m.X.I || x >= m.X.N || y < m.Y.I || y >= m.Y.N {
		return 0, ErrOutOfRange
	}
	if m.values == nil {
		return 0, ErrNotAllocated
	}

	xl := m.X.Len()
	a, b := x-m.X.I, y-m.Y.I

	if !m.Triangular {
		return a + b*xl, nil
	}

	i, j := a, b
	if i > j {
		i, j = j, i
	}

	return (j - i) + i*xl - i*(i-1)/2, nil
}

// Set stores v at logical coordinate (x, y). When the matrix is
// triangular, Set(x, y, v) and Set(y, x, v) address the same cell.
func (m *Matrix) Set(x, y int, v float64) error {
	idx, err := m.index(x, y)
	if err != nil {
		return err
	}
	m.values[idx] = v

	return nil
}

// Get returns the value stored at logical coordinate (x, y).
func (m *Matrix) Get(x, y int) (float64, error) {
	idx, err := m.index(x, y)
	if err != nil {
		return 0, err
	}

	return m.values[idx], nil
}

// Each visits every logical pair of the active ranges, walking the stored
// cells in row-major (x, y) order and calling fn with the coordinate and
// its stored value. When m is triangular, both orientations of each stored
// pair are visited — (x, y) and, for x != y, (y, x) right after it — matching spec.md §4.H's "iterates (x, y) over
// the matrix's active ranges (both orientations when triangular)" so an
// output adapter can emit one record per logical pair without special-
// casing the packed storage. Each stops and returns fn's error on first
// failure.
func (m *Matrix) Each(fn func(x, y int, v float64) error) error {
	for x := m.X.I; x < m.X.N; x++ {
		for y := m.Y.I; y < m.Y.N; y++ {
			if m.Triangular && y > x {
				continue
			}

			v, err := m.Get(x, y)
			if err != nil {
				return err
			}
			if err := fn(x, y, v); err != nil {
				return err
			}

			if m.Triangular && y != x {
				if err := fn(y, x, v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
