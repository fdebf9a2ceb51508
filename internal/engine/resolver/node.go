package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsconf/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsconf/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsconf/internal/adapters/jsonc"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsconf/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsconf/internal/adapters/npm"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsconf/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsconf/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			jsonc.NodeID,
			npm.NodeID,
			cache.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			packages, err := graft.Dep[ports.PackageResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ResultCache](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, parser, packages, store, tracer, log), nil
		},
	})
}
