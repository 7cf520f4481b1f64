// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Solution to problem 005
// https://projecteuler.net/problem=5

package problems

import (
	"github.com/staranto/eulergo/internal/primes"
	"github.com/staranto/eulergo/internal/problem"
)

func init() {
	problem.Register(5, solveProblem5)
}

// solveProblem5 finds the least common multiple of 1..20 by taking the
// highest power of each prime seen across the factorizations.
func solveProblem5() (uint64, bool) {
	return smallestMultiple(20), true
}

func smallestMultiple(limit int) uint64 {
	c := primes.WithCapacity(limit + 1)

	powers := map[int]int{}
	for n := 2; n <= limit; n++ {
		counts := map[int]int{}
		for _, p := range c.PrimeFactors(n) {
			counts[p]++
		}
		for p, k := range counts {
			if k > powers[p] {
				powers[p] = k
			}
		}
	}

	lcm := uint64(1)
	for p, k := range powers {
		for i := 0; i < k; i++ {
			lcm *= uint64(p)
		}
	}
	return lcm
}
