package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Pougher/coyote/internal/adapters/lock"
	"github.com/Pougher/coyote/internal/core/ports"
)

// NodeID identifies the staleness oracle Graft node.
const NodeID graft.ID = "adapter.oracle"

func init() {
	graft.Register(graft.Node[ports.Oracle]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{lock.NodeID},
		Run: func(ctx context.Context) (ports.Oracle, error) {
			store, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewOracle(store), nil
		},
	})
}
