// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/gorun"
	"github.com/staranto/eulergo/internal/meta"
	"github.com/staranto/eulergo/internal/output"
	"github.com/staranto/eulergo/internal/scaffold"
)

// AllCommandAction runs every problem file found on disk, in order, and then
// reports status and timing for each. The first failing problem stops the run;
// the report still covers everything attempted.
func AllCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 0 {
		return errors.New("all takes no arguments")
	}

	entries, err := scaffold.List(meta.ProblemsPath(cmd.String("root")))
	if err != nil {
		return err
	}
	log.Debugf("found %d problems", len(entries))

	stdout := Stdout(cmd)
	runner := NewRunner(cmd)

	var (
		rows   []output.Row
		runErr error
	)
	for _, e := range entries {
		fmt.Fprintf(stdout, "▶ %s\n", e.Name)

		var answer bytes.Buffer
		runner.Stdout = io.MultiWriter(stdout, &answer)

		elapsed, err := runner.Timed(ctx, e.N)
		row := output.Row{
			Problem: e.N,
			Name:    e.Name,
			Elapsed: elapsed,
			Answer:  strings.TrimSpace(answer.String()),
		}
		switch {
		case err != nil:
			row.Status = output.StatusFailed
			var ee *gorun.ExitError
			if errors.As(err, &ee) {
				row.ExitCode = ee.Code
			}
			runErr = err
		case row.Answer == "":
			row.Status = output.StatusUnsolved
		default:
			row.Status = output.StatusSolved
		}
		rows = append(rows, row)

		if runErr != nil {
			break
		}
	}

	color := cmd.Bool("color")
	if !cmd.IsSet("color") {
		color = output.ColorDefault(stdout)
	}

	if err := output.Render(stdout, rows, output.Options{
		Format: cmd.String("output"),
		Filter: cmd.String("filter"),
		Sort:   cmd.String("sort"),
		Titles: cmd.Bool("titles"),
		Color:  color,
	}); err != nil {
		return err
	}

	return runErr
}

// AllCommandBuilder constructs the cli.Command for "all".
func AllCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "all",
		Usage:     "run every problem and report timings",
		UsageText: "eulerctl all [options]",
		Flags:     NewReportFlags("all", meta.Config.Source),
		Action:    AllCommandAction,
		Meta:      meta,
	}).Build()
}
