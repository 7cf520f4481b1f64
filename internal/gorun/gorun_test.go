// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package gorun

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeGo writes a stand-in for the go binary that echoes its arguments and
// the directory it ran in, then exits with $FAKE_GO_EXIT (default 0).
func fakeGo(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain is a shell script")
	}

	p := filepath.Join(t.TempDir(), "go")
	script := "#!/bin/sh\necho \"$@\"\npwd\necho oops >&2\nexit ${FAKE_GO_EXIT:-0}\n"
	require.NoError(t, os.WriteFile(p, []byte(script), 0o755))
	return p
}

func TestArgs(t *testing.T) {
	assert.Equal(t, []string{"run", "./cmd/euler", "32"}, Args(32))
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	r := &Runner{Go: fakeGo(t), Dir: dir, Stdout: &out, Stderr: &errOut}

	require.NoError(t, r.Run(context.Background(), 7))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "run ./cmd/euler 7", lines[0])

	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(lines[1])
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)

	assert.Equal(t, "oops\n", errOut.String())
}

func TestRunner_RunExitCode(t *testing.T) {
	t.Setenv("FAKE_GO_EXIT", "3")
	r := &Runner{Go: fakeGo(t), Dir: t.TempDir(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), 1)
	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.Code)
	assert.Contains(t, ee.Error(), "exited with status 3")
}

func TestRunner_RunMissingBinary(t *testing.T) {
	r := &Runner{Go: filepath.Join(t.TempDir(), "no-such-go"), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), 1)
	require.Error(t, err)

	var ee *ExitError
	assert.False(t, errors.As(err, &ee))
	assert.Contains(t, err.Error(), "failed to run")
}

func TestRunner_Mean(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Go: fakeGo(t), Dir: t.TempDir(), Stdout: &out, Stderr: &bytes.Buffer{}}

	mean, err := r.Mean(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Greater(t, int64(mean), int64(0))
	assert.Equal(t, 3, strings.Count(out.String(), "run ./cmd/euler 10"))
}

func TestRunner_MeanStopsOnFailure(t *testing.T) {
	t.Setenv("FAKE_GO_EXIT", "1")
	var out bytes.Buffer
	r := &Runner{Go: fakeGo(t), Dir: t.TempDir(), Stdout: &out, Stderr: &bytes.Buffer{}}

	_, err := r.Mean(context.Background(), 10, 5)
	assert.Error(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "run ./cmd/euler"))
}

func TestRunner_MeanRejectsZero(t *testing.T) {
	r := &Runner{}
	_, err := r.Mean(context.Background(), 10, 0)
	assert.Error(t, err)
}
