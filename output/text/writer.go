// Package text implements the output.Adapter plain-text format of
// spec.md §6: one whitespace-separated record per logical pair, preceded by
// a comment header naming the active ranges and whether the matrix is
// triangular. The header does not name the input source.
package text

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-harry/harry/simmatrix"
)

// Writer is an output.Adapter writing the plain-text record format.
type Writer struct {
	name string
	file *os.File
	w    *bufio.Writer
}

// Open prepares name to receive records. name == "-" writes to stdout.
func (wr *Writer) Open(name string) error {
	wr.name = name
	if name == "-" {
		wr.w = bufio.NewWriter(os.Stdout)
		return nil
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("text: open %q: %w", name, err)
	}
	wr.file = f
	wr.w = bufio.NewWriter(f)

	return nil
}

// Write drains m: a header comment naming the active ranges, then one
// record per logical pair as visited by m.Each (both orientations of each
// off-diagonal cell when m is triangular) — fields label_x, label_y, src_x,
// src_y, value, whitespace-separated, newline-terminated.
func (wr *Writer) Write(m *simmatrix.Matrix) (int, error) {
	fmt.Fprintf(wr.w, "# harry matrix x=[%d:%d) y=[%d:%d) triangular=%t\n",
		m.X.I, m.X.N, m.Y.I, m.Y.N, m.Triangular)

	count := 0
	err := m.Each(func(x, y int, v float64) error {
		_, werr := fmt.Fprintf(wr.w, "%g %g %s %s %g\n",
			m.Labels[x], m.Labels[y], m.Srcs[x], m.Srcs[y], v)
		if werr != nil {
			return werr
		}
		count++

		return nil
	})
	if err != nil {
		return count, fmt.Errorf("text: write: %w", err)
	}

	return count, nil
}

// Close flushes buffered output and releases the underlying file, if any.
func (wr *Writer) Close() error {
	if wr.w != nil {
		if err := wr.w.Flush(); err != nil {
			return fmt.Errorf("text: flush: %w", err)
		}
	}
	if wr.file != nil {
		return wr.file.Close()
	}

	return nil
}
