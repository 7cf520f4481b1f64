// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Solution to problem 010
// https://projecteuler.net/problem=10

package problems

import (
	"github.com/staranto/eulergo/internal/primes"
	"github.com/staranto/eulergo/internal/problem"
)

func init() {
	problem.Register(10, solveProblem10)
}

func solveProblem10() (uint64, bool) {
	return sumPrimesBelow(2_000_000), true
}

func sumPrimesBelow(n int) uint64 {
	var sum uint64
	for _, p := range primes.New().PrimesBelow(n) {
		sum += uint64(p)
	}
	return sum
}
