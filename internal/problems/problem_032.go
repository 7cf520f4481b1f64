// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Solution to problem 032
// https://projecteuler.net/problem=32

package problems

import (
	"github.com/staranto/eulergo/internal/problem"
)

func init() {
	problem.Register(32, solveProblem32)
}

// solveProblem32 sums every product whose multiplicand/multiplier/product
// identity uses the digits 1 through 9 exactly once. A 9-digit identity always
// has a 4-digit product, so only the four ways of splitting the remaining five
// digits need checking.
func solveProblem32() (uint64, bool) {
	products := map[uint64]struct{}{}

	perms := newPermutations([9]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	for digits, ok := perms.next(); ok; digits, ok = perms.next() {
		for _, split := range identitySplits {
			if c, ok := evaluateIdentity(digits, split); ok {
				products[c] = struct{}{}
			}
		}
	}

	var sum uint64
	for p := range products {
		sum += p
	}
	return sum, true
}

// identitySplits are the multiplicand lengths paired with multiplier lengths;
// the product always takes the last four digits.
var identitySplits = [][2]int{
	{1, 4}, // 1 * 1_000 = 1_000
	{2, 3}, // 10 * 100 = 1_000
	{3, 2}, // 100 * 10 = 1_000
	{4, 1}, // 1_000 * 1 = 1_000
}

func evaluateIdentity(digits [9]uint64, split [2]int) (uint64, bool) {
	a := digitsToNum(digits[:split[0]])
	b := digitsToNum(digits[split[0] : split[0]+split[1]])
	c := digitsToNum(digits[5:])

	if a*b != c {
		return 0, false
	}
	return c, true
}

func digitsToNum(digits []uint64) uint64 {
	var n uint64
	for _, d := range digits {
		n = n*10 + d
	}
	return n
}

// permutations walks every ordering of nine digits with Heap's algorithm,
// yielding the starting order first.
type permutations struct {
	a     [9]uint64
	c     [9]int
	i     int
	first bool
}

func newPermutations(start [9]uint64) *permutations {
	return &permutations{a: start, first: true}
}

func (p *permutations) next() ([9]uint64, bool) {
	if p.first {
		p.first = false
		return p.a, true
	}

	for p.i < len(p.a) {
		if p.c[p.i] < p.i {
			if p.i%2 == 0 {
				p.a[0], p.a[p.i] = p.a[p.i], p.a[0]
			} else {
				p.a[p.c[p.i]], p.a[p.i] = p.a[p.i], p.a[p.c[p.i]]
			}
			p.c[p.i]++
			p.i = 0
			return p.a, true
		}
		p.c[p.i] = 0
		p.i++
	}

	return p.a, false
}
