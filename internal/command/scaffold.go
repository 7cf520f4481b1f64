// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/meta"
	"github.com/staranto/eulergo/internal/scaffold"
)

// ScaffoldCommandAction creates the source and test file for a new problem.
// It refuses to touch a problem that already has files on disk.
func ScaffoldCommandAction(ctx context.Context, cmd *cli.Command) error {
	n, err := ProblemArg(cmd)
	if err != nil {
		return err
	}

	dir := meta.ProblemsPath(cmd.String("root"))
	paths, err := scaffold.Create(dir, n)
	if err != nil {
		var pe *scaffold.PathError
		if errors.As(err, &pe) && errors.Is(err, scaffold.ErrExists) {
			fmt.Fprintf(Stderr(cmd), "✗ %s\n", pe.Path)
			return scaffold.ErrExists
		}
		return err
	}

	for _, p := range paths {
		fmt.Fprintf(Stdout(cmd), "✓ %s\n", p)
	}
	return nil
}

// ScaffoldCommandBuilder constructs the cli.Command for "scaffold".
func ScaffoldCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "scaffold",
		Usage:     "create a skeletal problem file and test",
		UsageText: "eulerctl scaffold [options] <n>",
		ArgsUsage: "<n>",
		Action:    ScaffoldCommandAction,
		Meta:      meta,
	}).Build()
}
