// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"text/template"

	"github.com/apex/log"
)

// ErrExists is returned when a scaffold target is already on disk.
var ErrExists = errors.New("file already exists")

// MaxProblem is the largest number the three-digit file naming can hold.
const MaxProblem = 999

var fileRe = regexp.MustCompile(`^problem_(\d{3})\.go$`)

// FileName returns the base name of the source file for problem n.
func FileName(n int) string {
	return fmt.Sprintf("problem_%03d.go", n)
}

// TestFileName returns the base name of the test file for problem n.
func TestFileName(n int) string {
	return fmt.Sprintf("problem_%03d_test.go", n)
}

// Name returns the display name used for problem n, e.g. problem_032.
func Name(n int) string {
	return fmt.Sprintf("problem_%03d", n)
}

// PathError reports which file blocked or failed a scaffold.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Create writes the source and test files for problem n into dir, creating
// dir as needed, and returns the written paths. Nothing is left behind when
// either file already exists or cannot be written.
func Create(dir string, n int) ([]string, error) {
	if n < 1 || n > MaxProblem {
		return nil, fmt.Errorf("problem number must be between 1 and %d, got %d", MaxProblem, n)
	}

	files := []struct {
		path string
		tmpl *template.Template
	}{
		{filepath.Join(dir, FileName(n)), problemTmpl},
		{filepath.Join(dir, TestFileName(n)), testTmpl},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			return nil, &PathError{Path: f.path, Err: ErrExists}
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	for _, f := range files {
		if err := render(f.path, f.tmpl, n); err != nil {
			// A retry must not find a half-scaffolded problem.
			for _, p := range written {
				if rerr := os.Remove(p); rerr != nil {
					log.WithError(rerr).Warnf("failed to remove %s", p)
				}
			}
			return nil, err
		}
		log.Debugf("scaffolded %s", f.path)
		written = append(written, f.path)
	}

	return written, nil
}

// render executes tmpl for problem n into a new file at path.
func render(path string, tmpl *template.Template, n int) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ N int }{n}); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	// O_EXCL also refuses a file that appeared after the Stat in Create.
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:mnd
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &PathError{Path: path, Err: ErrExists}
		}
		return &PathError{Path: path, Err: err}
	}
	_, err = fh.Write(buf.Bytes())
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return &PathError{Path: path, Err: err}
	}
	return nil
}

// Entry is a problem source file found on disk.
type Entry struct {
	N    int
	Name string
	Path string
}

// List returns the problem source files in dir, ascending by number. Test
// files and anything not named problem_<nnn>.go are ignored.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("no problems dir (scaffold something first): %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		m := fileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		entries = append(entries, Entry{
			N:    n,
			Name: Name(n),
			Path: filepath.Join(dir, de.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].N < entries[j].N
	})
	return entries, nil
}
