// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/gorun"
)

// defaultIters is how many runs `time` averages over unless told otherwise.
const defaultIters = 100

// NewGlobalFlags returns the flags every subcommand carries. params[0] is the
// subcommand name used to namespace config keys and params[1] is the config
// file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	root, _ := os.Getwd()

	flags = []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(params[0], params[1], &cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "project root containing go.mod",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("EULERCTL_ROOT"),
			),
			Value: root,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(params[0], params[1], &cli.StringFlag{
			Name:  "go",
			Usage: "go toolchain binary used to build and run problems",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("EULERCTL_GO"),
			),
			Value: gorun.DefaultGo,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}),
	}

	return
}

// NewReportFlags returns the flags controlling how a run report is rendered.
func NewReportFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(params[1])),
				yaml.YAML("color", altsrc.StringSourcer(params[1])),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated report filters, e.g. status=solved,elapsed_ns>1000000",
		},
		NameSpacedValueChainFlagFromConfigFile(params[0], params[1], &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "report format",
			Sources: cli.NewValueSourceChain(),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated report columns to sort by, '-' prefix for descending",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"sort", altsrc.StringSourcer(params[1])),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(params[1])),
				yaml.YAML("titles", altsrc.StringSourcer(params[1])),
			),
			Value: true,
		},
	}

	return
}

// NewItersFlag constructs the --iters flag for the time command. The value
// may also come from EULERCTL_ITERS or time.iters in the config file.
func NewItersFlag(path string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "iters",
		Aliases: []string{"i"},
		Usage:   "number of runs to average over",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("EULERCTL_ITERS"),
			yaml.YAML("time.iters", altsrc.StringSourcer(path)),
		),
		Value: defaultIters,
		Validator: func(value int) error {
			return FlagValidators(value, PositiveValidator)
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
