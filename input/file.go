package input

import (
	"context"
	"fmt"
	"os"

	"github.com/go-harry/harry/hstring"
)

// FileAdapter reads each of Paths whole, producing one string per file in
// the order given.
type FileAdapter struct {
	Paths []string
}

// Read loads every path in a.Paths into one hstring.String each.
func (a FileAdapter) Read(ctx context.Context) ([]hstring.String, error) {
	if len(a.Paths) == 0 {
		return nil, ErrEmptySource
	}

	out := make([]hstring.String, 0, len(a.Paths))
	for i, p := range a.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("input: read %q: %w", p, err)
		}
		out = append(out, hstring.FromBytes(uint64(i), p, data))
	}

	return out, nil
}
