package navsource

import (
	"context"

	"github.com/deskflow/deskflow/pkg/types"
)

// Tree is one immutable navigation snapshot. Version changes whenever the
// upstream menu definition changes and keys the result cache.
type Tree struct {
	Version string
	Items   []types.NavigationItem
}

// Source supplies navigation trees. Implementations must return a fresh,
// never-shared tree per call; callers never mutate the result.
type Source interface {
	Fetch(ctx context.Context, bypassCache bool) (*Tree, error)
}
