package input

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/go-harry/harry/hstring"
)

// LineAdapter reads one input string per line of Path, using "Path:N" as
// its Src, where N is the line's 1-based number.
type LineAdapter struct {
	Path string
}

// Read opens Path and returns one hstring.String per line, in file order.
func (a LineAdapter) Read(ctx context.Context) ([]hstring.String, error) {
	f, err := os.Open(a.Path)
	if err != nil {
		return nil, fmt.Errorf("input: open %q: %w", a.Path, err)
	}
	defer f.Close()

	var out []hstring.String
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	idx := uint64(0)
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line++
		text := sc.Text()
		out = append(out, hstring.FromBytes(idx, fmt.Sprintf("%s:%d", a.Path, line), []byte(text)))
		idx++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: scan %q: %w", a.Path, err)
	}

	if len(out) == 0 {
		return nil, ErrEmptySource
	}

	return out, nil
}
