// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
)

const (
	// EnvDir overrides the base cache directory.
	EnvDir = "EULERCTL_CACHE_DIR"
	// EnvEnabled disables the cache when set to "0" or "false".
	EnvEnabled = "EULERCTL_CACHE"
)

// Entry is one stored artifact.
type Entry struct {
	Key     string
	Path    string
	Data    []byte
	ModTime time.Time
}

// Dir resolves the base cache directory: EULERCTL_CACHE_DIR when set,
// otherwise eulerctl beneath os.UserCacheDir(). It returns false when neither
// resolves, which callers treat as a disabled cache.
func Dir() (string, bool) {
	if c := os.Getenv(EnvDir); c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "eulerctl"), true
	}
	return "", false
}

// Enabled returns true unless EULERCTL_CACHE is "0" or "false".
func Enabled() bool {
	switch os.Getenv(EnvEnabled) {
	case "0", "false":
		return false
	}
	return true
}

// EnsureBaseDir creates the base cache directory. The bool reports whether
// the cache is usable afterwards.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// Store is a namespace of entries beneath the base cache directory. Keys are
// stored under their MD5 hash so any string is a valid key.
type Store struct {
	subdirs []string
}

// NewStore returns a Store rooted at the base directory joined with subdirs.
func NewStore(subdirs ...string) *Store {
	return &Store{subdirs: subdirs}
}

// dir returns the Store's directory, or false when caching is off.
func (s *Store) dir() (string, bool) {
	if !Enabled() {
		return "", false
	}
	base, ok := Dir()
	if !ok {
		return "", false
	}
	return filepath.Join(append([]string{base}, s.subdirs...)...), true
}

func (s *Store) path(key string) (string, bool) {
	dir, ok := s.dir()
	if !ok {
		return "", false
	}
	return filepath.Join(dir, encodeKey(key)), true
}

// Read returns the entry stored under key with surrounding whitespace
// trimmed. It reports false for a missing entry or a disabled cache.
func (s *Store) Read(key string) (*Entry, bool) {
	p, ok := s.path(key)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		log.WithError(err).Debugf("unreadable cache entry %s", p)
		return nil, false
	}
	return &Entry{
		Key:     key,
		Path:    p,
		Data:    bytes.TrimSpace(b),
		ModTime: info.ModTime(),
	}, true
}

// Write stores data under key, replacing any previous entry. A disabled cache
// silently discards it.
func (s *Store) Write(key string, data []byte) error {
	dir, ok := s.dir()
	if !ok {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, encodeKey(key)), data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Stamp sets the modification time of the entry under key, which is the age
// Purge judges it by.
func (s *Store) Stamp(key string, at time.Time) error {
	p, ok := s.path(key)
	if !ok {
		return nil
	}
	if err := os.Chtimes(p, at, at); err != nil {
		return fmt.Errorf("failed to stamp cache entry: %w", err)
	}
	return nil
}

// Purge removes every cached file older than hours. hours <= 0 disables it.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == base && errors.Is(walkErr, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			log.WithError(walkErr).Debugf("skipping %s", path)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", path)
			return nil
		}
		log.Debugf("removed cache file %s", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

func encodeKey(k string) string {
	sum := md5.Sum([]byte(k))
	return hex.EncodeToString(sum[:])
}
