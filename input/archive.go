package input

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"github.com/go-harry/harry/hstring"
)

// ArchiveAdapter reads every file entry of a zip archive at Path, each
// entry's decompressed contents becoming one string. Entries are visited
// in the archive's central-directory order.
type ArchiveAdapter struct {
	Path string
}

// Read opens the zip archive at a.Path and returns one hstring.String per
// file entry.
func (a ArchiveAdapter) Read(ctx context.Context) ([]hstring.String, error) {
	zr, err := zip.OpenReader(a.Path)
	if err != nil {
		return nil, fmt.Errorf("input: open archive %q: %w", a.Path, err)
	}
	defer zr.Close()

	var out []hstring.String
	idx := uint64(0)
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("input: open entry %q: %w", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("input: read entry %q: %w", entry.Name, err)
		}

		out = append(out, hstring.FromBytes(idx, entry.Name, data))
		idx++
	}

	if len(out) == 0 {
		return nil, ErrEmptySource
	}

	return out, nil
}
