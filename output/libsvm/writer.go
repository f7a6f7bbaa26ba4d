// Package libsvm implements the output.Adapter libsvm format of spec.md §6:
// one line per row of the active x-range, each a sparse vector
// "label <col>:<value> <col>:<value> …" with 1-based column indices
// relative to the active y-range.
package libsvm

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-harry/harry/simmatrix"
)

// Writer is an output.Adapter writing the libsvm sparse-row format.
type Writer struct {
	file *os.File
	w    *bufio.Writer
}

// Open prepares name to receive records. name == "-" writes to stdout.
func (wr *Writer) Open(name string) error {
	if name == "-" {
		wr.w = bufio.NewWriter(os.Stdout)
		return nil
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("libsvm: open %q: %w", name, err)
	}
	wr.file = f
	wr.w = bufio.NewWriter(f)

	return nil
}

// Write drains m: one line per x in the active x-range, label first, then
// one 1-based-column:value pair per y in the active y-range.
func (wr *Writer) Write(m *simmatrix.Matrix) (int, error) {
	count := 0
	for x := m.X.I; x < m.X.N; x++ {
		if _, err := fmt.Fprintf(wr.w, "%g", m.Labels[x]); err != nil {
			return count, fmt.Errorf("libsvm: write: %w", err)
		}

		for y := m.Y.I; y < m.Y.N; y++ {
			v, err := m.Get(x, y)
			if err != nil {
				return count, fmt.Errorf("libsvm: get(%d,%d): %w", x, y, err)
			}
			col := y - m.Y.I + 1
			if _, err := fmt.Fprintf(wr.w, " %d:%g", col, v); err != nil {
				return count, fmt.Errorf("libsvm: write: %w", err)
			}
		}

		if _, err := fmt.Fprintln(wr.w); err != nil {
			return count, fmt.Errorf("libsvm: write: %w", err)
		}
		count++
	}

	return count, nil
}

// Close flushes buffered output and releases the underlying file, if any.
func (wr *Writer) Close() error {
	if wr.w != nil {
		if err := wr.w.Flush(); err != nil {
			return fmt.Errorf("libsvm: flush: %w", err)
		}
	}
	if wr.file != nil {
		return wr.file.Close()
	}

	return nil
}
