// Package main is the entry point for the coyote build driver.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/Pougher/coyote/cmd/coyote/commands"
	"github.com/Pougher/coyote/internal/app"
	_ "github.com/Pougher/coyote/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A hung child process blocks the build indefinitely; interrupts cancel
	// the command context and unblock the wait.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
