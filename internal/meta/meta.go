// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"path/filepath"

	"github.com/staranto/eulergo/internal/config"
)

// ProblemsDir is where problem files live, relative to the project root.
const ProblemsDir = "internal/problems"

// RunnerPkg is the package `go run` is pointed at to solve one problem.
const RunnerPkg = "./cmd/euler"

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}

// ProblemsPath returns the problems directory beneath root.
func ProblemsPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(ProblemsDir))
}
