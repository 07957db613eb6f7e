package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Pougher/coyote/internal/adapters/config"
	"github.com/Pougher/coyote/internal/adapters/lock"
	"github.com/Pougher/coyote/internal/adapters/logger"
	"github.com/Pougher/coyote/internal/adapters/shell"
	"github.com/Pougher/coyote/internal/core/ports"
	"github.com/Pougher/coyote/internal/engine/runner"
	"github.com/Pougher/coyote/internal/ui"
)

const (
	// AppNodeID identifies the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID identifies the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the dependencies the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runner.NodeID,
			lock.NodeID,
			shell.NodeID,
			logger.NodeID,
			ui.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
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
	return New(loader, run, store, executor, log, printer), nil
}
