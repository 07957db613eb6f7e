// Package app implements the application layer: it turns a recipe name and
// a rebuild flag into one complete build run.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/adapters/config"
	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/core/ports"
	"github.com/Pougher/coyote/internal/engine/resolver"
	"github.com/Pougher/coyote/internal/engine/runner"
	"github.com/Pougher/coyote/internal/ui"
)

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	runner   *runner.Runner
	store    ports.LockStore
	executor ports.Executor
	logger   ports.Logger
	printer  *ui.Printer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	run *runner.Runner,
	store ports.LockStore,
	executor ports.Executor,
	logger ports.Logger,
	printer *ui.Printer,
) *App {
	return &App{
		loader:   loader,
		runner:   run,
		store:    store,
		executor: executor,
		logger:   logger,
		printer:  printer,
	}
}

// Build runs the build described by the recipe. An empty recipe selects
// coyote.json. With rebuild set, staleness checks are bypassed and every
// command runs.
func (a *App) Build(ctx context.Context, recipe string, rebuild bool) error {
	project, err := a.resolve(ctx, recipe)
	if err != nil {
		return err
	}
	if recipe != "" {
		a.printer.Recipe(recipe)
	}

	result, err := a.runner.Run(ctx, project, rebuild)
	if err != nil {
		return zerr.Wrap(err, "build failed")
	}

	// The build itself already succeeded; a state write failure only costs
	// staleness checks on the next run.
	if err := a.store.Flush(); err != nil {
		a.logger.Warn("could not persist build state: " + err.Error())
		a.printer.Warning("build state was not saved; the next build treats every file as stale")
	}

	a.printer.Summary(result.Project, result.Elapsed)
	return nil
}

// Vars resolves the recipe's variables and returns "name=value" lines in
// lexicographically ascending key order.
func (a *App) Vars(ctx context.Context, recipe string) ([]string, error) {
	project, err := a.load(recipe)
	if err != nil {
		return nil, err
	}

	table, err := resolver.New(a.executor.Output).Resolve(ctx, project.Variables)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(table.Names()))
	for _, name := range table.Names() {
		value, _ := table.Lookup(name)
		lines = append(lines, name+"="+value)
	}
	return lines, nil
}

func (a *App) load(recipe string) (*domain.Project, error) {
	project, err := a.loader.Load(config.PathFor(".", recipe))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load build description")
	}
	return project, nil
}

// resolve loads the project and expands every string in it. Expansion
// happens up front, before the first process is spawned, so configuration
// errors never leave a partially built project behind.
func (a *App) resolve(ctx context.Context, recipe string) (*domain.Project, error) {
	project, err := a.load(recipe)
	if err != nil {
		return nil, err
	}

	res := resolver.New(a.executor.Output)
	table, err := res.Resolve(ctx, project.Variables)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve variables")
	}

	expanded, err := res.ExpandProject(project, table)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to expand build description")
	}
	return expanded, nil
}
