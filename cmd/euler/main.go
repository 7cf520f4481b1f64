// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// euler runs a single registered problem and prints its answer. eulerctl
// invokes it through `go run ./cmd/euler <n>`.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"

	mylog "github.com/staranto/eulergo/internal/log"
	"github.com/staranto/eulergo/internal/problem"
	_ "github.com/staranto/eulergo/internal/problems"
)

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	mylog.InitLogger()

	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: euler <problem number>")
		return 1
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		fmt.Fprintf(stderr, "invalid problem number %q\n", args[1])
		return 1
	}

	solve, err := problem.Lookup(n)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log.Debugf("solving problem %d", n)
	problem.Run(stdout, stderr, n, solve)
	return 0
}
