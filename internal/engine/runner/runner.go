// Package runner implements the execution engine: a strictly sequential
// walk over targets and commands that decides, per command, whether to run
// or skip, and aborts the whole build on the first failure.
package runner

import (
	"context"
	"time"

	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/core/ports"
	"github.com/Pougher/coyote/internal/ui"
)

// Result summarizes a completed build.
type Result struct {
	Project  string
	Executed int
	Skipped  int
	Elapsed  time.Duration
}

// Runner walks a resolved project and spawns its commands in order.
type Runner struct {
	executor ports.Executor
	oracle   ports.Oracle
	logger   ports.Logger
	printer  *ui.Printer
}

// New creates a Runner.
func New(executor ports.Executor, oracle ports.Oracle, logger ports.Logger, printer *ui.Printer) *Runner {
	return &Runner{
		executor: executor,
		oracle:   oracle,
		logger:   logger,
		printer:  printer,
	}
}

// Run executes the project's targets in declared order, and each target's
// commands in declared order. At most one child process is outstanding at
// any time. Commands gated by a run_if condition are skipped when their
// file is not stale; with force set, every command runs. A non-zero exit
// aborts the remainder of the build and nothing further is recorded.
func (r *Runner) Run(ctx context.Context, project *domain.Project, force bool) (*Result, error) {
	started := time.Now()
	result := &Result{Project: project.Name}

	for ti := range project.Targets {
		target := &project.Targets[ti]
		r.printer.Target(ti+1, len(project.Targets), target.Name)

		for ci := range target.Commands {
			cmd := &target.Commands[ci]

			if cmd.RunIf != nil && !force && !r.oracle.IsStale(cmd.RunIf.Path()) {
				result.Skipped++
				r.printer.CommandSkipped(ci+1, len(target.Commands), cmd.Line())
				continue
			}

			if err := r.executor.Run(ctx, cmd.Command, cmd.Arguments); err != nil {
				r.printer.CommandFailed(ci+1, len(target.Commands), cmd.Line())
				return nil, zerr.With(zerr.With(err, "target", target.Name), "command", cmd.Line())
			}

			result.Executed++
			r.printer.CommandDone(ci+1, len(target.Commands), cmd.Line())

			if cmd.RunIf != nil {
				// Baseline is taken now, not at check time, so changes the
				// command itself made to the file are covered.
				if err := r.oracle.Record(cmd.RunIf.Path()); err != nil {
					r.logger.Warn("could not record build state for '" + cmd.RunIf.Path() + "': " + err.Error())
				}
			}
		}
	}

	result.Elapsed = time.Since(started)
	return result, nil
}
