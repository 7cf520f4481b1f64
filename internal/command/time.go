// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/cacheutil"
	"github.com/staranto/eulergo/internal/config"
	"github.com/staranto/eulergo/internal/meta"
	"github.com/staranto/eulergo/internal/timing"
)

// TimeCommandAction runs one problem repeatedly and prints the mean wall-clock
// time. The mean is recorded so the next run can be compared against it.
func TimeCommandAction(ctx context.Context, cmd *cli.Command) error {
	n, err := ProblemArg(cmd)
	if err != nil {
		return err
	}
	iters := cmd.Int("iters")

	cleanHours, _ := config.GetInt("cache.clean")
	if err := cacheutil.Purge(cleanHours); err != nil {
		log.WithError(err).Warn("failed to purge timing history")
	}
	prev, hadPrev := timing.Last(n)

	mean, err := NewRunner(cmd).Mean(ctx, n, iters)
	if err != nil {
		return err
	}

	stdout := Stdout(cmd)
	fmt.Fprintf(stdout, "mean over %d runs: %v\n", iters, mean)

	cur := timing.Record{Problem: n, Iters: iters, Mean: mean, RecordedAt: time.Now()}
	if hadPrev {
		fmt.Fprintln(stdout, timing.Compare(prev, cur))
	}
	if err := timing.Save(cur); err != nil {
		log.WithError(err).Warn("failed to record timing")
	}

	return nil
}

// TimeCommandBuilder constructs the cli.Command for "time".
func TimeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "time",
		Usage:     "time a single problem over multiple runs",
		UsageText: "eulerctl time [options] <n>",
		ArgsUsage: "<n>",
		Flags: []cli.Flag{
			NewItersFlag(meta.Config.Source),
		},
		Action: TimeCommandAction,
		Meta:   meta,
	}).Build()
}
