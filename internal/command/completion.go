// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/eulergo/internal/meta"
)

const bashCompletionScript = `# bash completion for eulerctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_eulerctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "scaffold solve all time completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--root -r --go"

    case "$cmd" in
        all)
            local opts="$common --color -c --no-color --filter -f --output -o --sort -s --titles -t --no-titles"
            ;;
        time)
            local opts="$common --iters -i"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --root|-r)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _eulerctl eulerctl
`

const zshCompletionScript = `#compdef eulerctl

_eulerctl() {
  local -a cmds
  cmds=(
    'scaffold:create a skeletal problem file and test'
    'solve:compile and run one problem'
    'all:run every problem and report timings'
    'time:time a single problem over multiple runs'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
    '(-r --root)'{-r,--root}'[project root]:root:_directories'
    '--go[go toolchain binary]:go:_files'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'eulerctl commands' cmds
    return
  fi

  case $words[2] in
    scaffold|solve)
      _arguments -C $common '1:problem number'
      ;;
    all)
      _arguments -C \
        $common \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '(-o --output)'{-o,--output}'[report format]:format:(text json yaml)' \
        '(-s --sort)'{-s,--sort}'[sort columns]:columns' \
        '(-f --filter)'{-f,--filter}'[report filters]:filters' \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    time)
      _arguments -C \
        $common \
        '(-i --iters)'{-i,--iters}'[number of runs]:iters' \
        '1:problem number'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _eulerctl eulerctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}

	// Try to detect from SHELL when not given.
	if shell == "" {
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			shell = "zsh"
		} else if strings.HasSuffix(sh, "bash") {
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(Stdout(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(Stdout(cmd), zshCompletionScript)
	default:
		fmt.Fprintln(Stderr(cmd), "usage: eulerctl completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "eulerctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
