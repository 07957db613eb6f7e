package runner

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Pougher/coyote/internal/adapters/fs"
	"github.com/Pougher/coyote/internal/adapters/logger"
	"github.com/Pougher/coyote/internal/adapters/shell"
	"github.com/Pougher/coyote/internal/core/ports"
	"github.com/Pougher/coyote/internal/ui"
)

// NodeID identifies the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.NodeID, logger.NodeID, ui.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			oracle, err := graft.Dep[ports.Oracle](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			printer, err := graft.Dep[*ui.Printer](ctx)
			if err != nil {
				return nil, err
			}
			return New(executor, oracle, log, printer), nil
		},
	})
}
