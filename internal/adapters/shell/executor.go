// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/core/ports"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run spawns the command and blocks until it exits. Stdout and stderr are
// streamed line by line to the logger while the process runs.
func (e *Executor) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user provided command

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return startError(name, err)
	}

	stdoutLog := &logWriter{logger: e.logger, level: levelInfo}
	stderrLog := &logWriter{logger: e.logger, level: levelError}

	// Pipes must both be drained before Wait; pump them concurrently so a
	// process writing heavily to one cannot stall the other. io.Copy has no
	// per-line limit, so arbitrarily long lines pass through.
	var eg errgroup.Group
	eg.Go(func() error {
		_, err := io.Copy(stdoutLog, stdout)
		return err
	})
	eg.Go(func() error {
		_, err := io.Copy(stderrLog, stderr)
		return err
	})
	pumpErr := eg.Wait()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err := cmd.Wait(); err != nil {
		return exitError(name, err)
	}

	// The exit status alone decides success; a pump error only means some
	// output was lost.
	if pumpErr != nil {
		e.logger.Warn("could not read all output of '" + name + "': " + pumpErr.Error())
	}
	return nil
}

const (
	levelInfo = iota
	levelError
)

// logWriter bridges a process output stream to the logger, emitting one
// log record per line. A trailing unterminated line is flushed on Close.
type logWriter struct {
	logger ports.Logger
	level  int
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == levelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// Output spawns the command and returns its captured stdout. Used for
// command substitution inside variable values.
func (e *Executor) Output(ctx context.Context, name string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user provided command

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", startError(name, err)
		}
		err = exitError(name, err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}

	return stdout.String(), nil
}

func startError(name string, cause error) error {
	return zerr.With(zerr.With(
		zerr.Wrap(domain.ErrCommandFailed, "could not start process"),
		"command", name),
		"cause", cause.Error())
}

func exitError(name string, cause error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(cause, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.With(
		zerr.Wrap(domain.ErrCommandFailed, "process exited with a failure status"),
		"command", name),
		"exit_code", exitCode)
}
