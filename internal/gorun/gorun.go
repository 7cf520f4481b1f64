// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package gorun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/eulergo/internal/meta"
)

// DefaultGo is the toolchain binary used when none is configured.
const DefaultGo = "go"

// ExitError reports a child process that ran but exited non-zero. Code is
// the child's exit status, which eulerctl exits with in turn.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

// Runner shells out to `go run` to solve problems.
type Runner struct {
	// Go is the toolchain binary; empty means DefaultGo.
	Go string
	// Dir is the project root the command runs in.
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Args returns the arguments passed to the Go binary to solve problem n.
func Args(n int) []string {
	return []string{"run", meta.RunnerPkg, strconv.Itoa(n)}
}

// Run solves problem n, streaming the child's output.
func (r *Runner) Run(ctx context.Context, n int) error {
	bin := r.Go
	if bin == "" {
		bin = DefaultGo
	}
	args := Args(n)

	c := exec.CommandContext(ctx, bin, args...)
	c.Dir = r.Dir
	c.Stdout = orDefault(r.Stdout, os.Stdout)
	c.Stderr = orDefault(r.Stderr, os.Stderr)

	display := bin + " " + strings.Join(args, " ")
	log.Debugf("running %q in %s", display, r.Dir)

	if err := c.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code := ee.ExitCode()
			if code < 0 {
				// Killed by a signal; there is no status to propagate.
				code = 1
			}
			return &ExitError{Cmd: display, Code: code}
		}
		return fmt.Errorf("failed to run %s: %w", display, err)
	}
	return nil
}

// Timed solves problem n and reports the wall-clock time it took.
func (r *Runner) Timed(ctx context.Context, n int) (time.Duration, error) {
	t0 := time.Now()
	err := r.Run(ctx, n)
	return time.Since(t0), err
}

// Mean runs problem n iters times and returns the mean duration. It stops at
// the first failure.
func (r *Runner) Mean(ctx context.Context, n int, iters int) (time.Duration, error) {
	if iters < 1 {
		return 0, fmt.Errorf("iterations must be at least 1, got %d", iters)
	}

	var total time.Duration
	for i := 0; i < iters; i++ {
		d, err := r.Timed(ctx, n)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total / time.Duration(iters), nil
}

func orDefault(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
