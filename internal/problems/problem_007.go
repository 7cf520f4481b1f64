// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Solution to problem 007
// https://projecteuler.net/problem=7

package problems

import (
	"github.com/staranto/eulergo/internal/primes"
	"github.com/staranto/eulergo/internal/problem"
)

func init() {
	problem.Register(7, solveProblem7)
}

// The 10001st prime sits at zero-based position 10000.
func solveProblem7() (uint64, bool) {
	return uint64(primes.New().NthPrime(10000)), true
}
