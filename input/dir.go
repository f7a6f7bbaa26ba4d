package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-harry/harry/hstring"
)

// DirAdapter reads every regular file under Root (optionally recursing
// into subdirectories) in sorted path order, each whole file becoming one
// string.
type DirAdapter struct {
	Root      string
	Recursive bool
}

// Read walks a.Root and returns one hstring.String per regular file found,
// sorted by path for a reproducible idx assignment.
func (a DirAdapter) Read(ctx context.Context) ([]hstring.String, error) {
	var paths []string

	walkErr := filepath.WalkDir(a.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != a.Root && !a.Recursive {
				return filepath.SkipDir
			}

			return nil
		}
		paths = append(paths, path)

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("input: walk %q: %w", a.Root, walkErr)
	}

	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, ErrEmptySource
	}

	out := make([]hstring.String, 0, len(paths))
	for i, p := range paths {
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
