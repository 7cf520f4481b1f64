// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	t.Setenv(EnvDir, "/tmp/eulerctl-cache")
	d, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/eulerctl-cache", d)
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvEnabled, tt.value)
			assert.Equal(t, tt.want, Enabled())
		})
	}
}

func TestEnsureBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "cache")
	t.Setenv(EnvDir, base)
	t.Setenv(EnvEnabled, "")

	got, ok, err := EnsureBaseDir()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, base, got)
	assert.DirExists(t, base)

	t.Setenv(EnvEnabled, "false")
	_, ok, err = EnsureBaseDir()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureBaseDir_Unwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	t.Setenv(EnvDir, filepath.Join(blocker, "cache"))
	t.Setenv(EnvEnabled, "")

	_, ok, err := EnsureBaseDir()
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStore_WriteRead(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvDir, base)
	t.Setenv(EnvEnabled, "")

	s := NewStore("timings")
	_, ok := s.Read("problem_032")
	assert.False(t, ok)

	require.NoError(t, s.Write("problem_032", []byte("  {\"mean_ns\":5}\n")))

	e, ok := s.Read("problem_032")
	require.True(t, ok)
	assert.Equal(t, "problem_032", e.Key)
	assert.Equal(t, filepath.Join(base, "timings", encodeKey("problem_032")), e.Path)
	assert.Equal(t, []byte("{\"mean_ns\":5}"), e.Data)
	assert.False(t, e.ModTime.IsZero())

	_, ok = NewStore("other").Read("problem_032")
	assert.False(t, ok, "stores do not share entries")
}

func TestStore_Disabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvEnabled, "0")

	s := NewStore()
	require.NoError(t, s.Write("k", []byte("v")))
	require.NoError(t, s.Stamp("k", time.Now()))
	_, ok := s.Read("k")
	assert.False(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Stamp(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())
	t.Setenv(EnvEnabled, "")

	s := NewStore("timings")
	assert.Error(t, s.Stamp("missing", time.Now()))

	require.NoError(t, s.Write("k", []byte("v")))
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, s.Stamp("k", at))

	e, ok := s.Read("k")
	require.True(t, ok)
	assert.True(t, at.Equal(e.ModTime))
}

func TestPurge(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())
	t.Setenv(EnvEnabled, "")

	s := NewStore("timings")
	require.NoError(t, s.Write("old", []byte("1")))
	require.NoError(t, s.Write("new", []byte("2")))
	require.NoError(t, s.Stamp("old", time.Now().Add(-48*time.Hour)))

	require.NoError(t, Purge(0))
	_, ok := s.Read("old")
	assert.True(t, ok, "hours <= 0 disables purging")

	require.NoError(t, Purge(24))
	_, ok = s.Read("old")
	assert.False(t, ok)
	_, ok = s.Read("new")
	assert.True(t, ok)
}

func TestPurge_MissingBase(t *testing.T) {
	t.Setenv(EnvDir, filepath.Join(t.TempDir(), "never-created"))
	assert.NoError(t, Purge(1))
}
