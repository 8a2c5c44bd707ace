package navsource

import (
	"context"

	"github.com/deskflow/deskflow/pkg/types"
)

// StaticSource serves a compiled-in navigation tree. It backs two cases:
// deployments without a remote navigation endpoint, and the fallback when
// the remote endpoint is unreachable. Fetch never fails.
type StaticSource struct {
	tree Tree
}

func NewStaticSource(version string, items []types.NavigationItem) *StaticSource {
	return &StaticSource{tree: Tree{Version: version, Items: items}}
}

func (s *StaticSource) Fetch(_ context.Context, _ bool) (*Tree, error) {
	return &Tree{Version: s.tree.Version, Items: s.tree.Items}, nil
}

// Tree returns the snapshot without the Source indirection, for callers that
// substitute the fallback synchronously.
func (s *StaticSource) Tree() *Tree {
	return &Tree{Version: s.tree.Version, Items: s.tree.Items}
}
