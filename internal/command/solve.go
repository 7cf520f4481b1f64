// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/meta"
)

// SolveCommandAction compiles and runs one problem, streaming its output.
func SolveCommandAction(ctx context.Context, cmd *cli.Command) error {
	n, err := ProblemArg(cmd)
	if err != nil {
		return err
	}
	return NewRunner(cmd).Run(ctx, n)
}

// SolveCommandBuilder constructs the cli.Command for "solve".
func SolveCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "solve",
		Usage:     "compile and run one problem",
		UsageText: "eulerctl solve [options] <n>",
		ArgsUsage: "<n>",
		Action:    SolveCommandAction,
		Meta:      meta,
	}).Build()
}
