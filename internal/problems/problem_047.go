// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Solution to problem 047
// https://projecteuler.net/problem=47

package problems

import (
	"github.com/staranto/eulergo/internal/primes"
	"github.com/staranto/eulergo/internal/problem"
)

func init() {
	problem.Register(47, solveProblem47)
}

// searchLimit sizes the sieve up front so the scan never extends it.
const searchLimit = 200_000

func solveProblem47() (uint64, bool) {
	first := firstConsecutive(4, searchLimit)
	return uint64(first), first != 0
}

// firstConsecutive returns the first of run consecutive integers that each
// have exactly run distinct prime factors, or 0 if none start below limit.
func firstConsecutive(run int, limit int) int {
	c := primes.WithCapacity(limit + run + 1)

	streak := 0
	for n := 2; n < limit+run; n++ {
		if distinct(c.PrimeFactors(n)) != run {
			streak = 0
			continue
		}
		streak++
		if streak == run {
			if start := n - run + 1; start < limit {
				return start
			}
			return 0
		}
	}
	return 0
}

// distinct counts unique values in an ascending slice.
func distinct(factors []int) int {
	count := 0
	for i, f := range factors {
		if i == 0 || f != factors[i-1] {
			count++
		}
	}
	return count
}
