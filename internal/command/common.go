// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/gorun"
	"github.com/staranto/eulergo/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ProblemArg validates and returns the single problem-number argument.
func ProblemArg(cmd *cli.Command) (int, error) {
	if cmd.NArg() != 1 {
		return 0, errors.New("expected exactly one problem number")
	}
	arg := cmd.Args().First()
	if err := FlagValidators(arg, ProblemNumberValidator); err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(arg)
	return n, nil
}

// Stdout returns the writer commands print results to.
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// Stderr returns the writer commands print notices and failures to.
func Stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// NewRunner builds a gorun.Runner from the --root and --go flags.
func NewRunner(cmd *cli.Command) *gorun.Runner {
	return &gorun.Runner{
		Go:     cmd.String("go"),
		Dir:    cmd.String("root"),
		Stdout: Stdout(cmd),
		Stderr: Stderr(cmd),
	}
}

// CommandBuilder is a helper that constructs a cli.Command for eulerctl
// subcommands using a consistent pattern. The builder wires metadata, applies
// the global flags, and sets up validators.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	ArgsUsage string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		ArgsUsage: cb.ArgsUsage,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: append(cb.Flags, NewGlobalFlags(cb.Name, cb.Meta.Config.Source)...),
		Action: func(ctx context.Context, c *cli.Command) error {
			log.Debugf("Executing action for %s %v", cb.Name, c.Args().Slice())
			return cb.Action(ctx, c)
		},
	}
}
