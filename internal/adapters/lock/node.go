package lock

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Pougher/coyote/internal/adapters/logger"
	"github.com/Pougher/coyote/internal/core/ports"
)

// NodeID identifies the lock store Graft node.
const NodeID graft.ID = "adapter.lock_store"

func init() {
	graft.Register(graft.Node[ports.LockStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LockStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(DefaultFile, log), nil
		},
	})
}
