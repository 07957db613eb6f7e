// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Pougher/coyote/internal/adapters/config"
	_ "github.com/Pougher/coyote/internal/adapters/fs"
	_ "github.com/Pougher/coyote/internal/adapters/lock"
	_ "github.com/Pougher/coyote/internal/adapters/logger"
	_ "github.com/Pougher/coyote/internal/adapters/shell"
	// Register app, engine, and ui nodes.
	_ "github.com/Pougher/coyote/internal/app"
	_ "github.com/Pougher/coyote/internal/engine/runner"
	_ "github.com/Pougher/coyote/internal/ui"
)
