package npm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/core/ports"
)

// NodeID is the unique identifier for the package resolver Graft node.
const NodeID graft.ID = "adapter.npm"

func init() {
	graft.Register(graft.Node[ports.PackageResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.PackageResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fsys), nil
		},
	})
}
