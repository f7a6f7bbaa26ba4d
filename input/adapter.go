package input

import (
	"context"

	"github.com/go-harry/harry/hstring"
)

// Adapter yields the ordered, fully materialized batch of strings spec.md
// §4.I requires be complete before Matrix allocation.
type Adapter interface {
	Read(ctx context.Context) ([]hstring.String, error)
}
