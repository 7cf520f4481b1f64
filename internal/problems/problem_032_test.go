// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveProblem32(t *testing.T) {
	got, ok := solveProblem32()
	assert.True(t, ok)
	assert.Equal(t, uint64(45228), got)
}

func TestPermutations(t *testing.T) {
	p := newPermutations([9]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	seen := map[[9]uint64]struct{}{}
	count := 0
	for perm, ok := p.next(); ok; perm, ok = p.next() {
		seen[perm] = struct{}{}
		count++
	}

	assert.Equal(t, 362880, count)
	assert.Len(t, seen, 362880, "every ordering is distinct")
}

func TestEvaluateIdentity(t *testing.T) {
	// 39 × 186 = 7254
	digits := [9]uint64{3, 9, 1, 8, 6, 7, 2, 5, 4}
	c, ok := evaluateIdentity(digits, [2]int{2, 3})
	assert.True(t, ok)
	assert.Equal(t, uint64(7254), c)

	_, ok = evaluateIdentity(digits, [2]int{1, 4})
	assert.False(t, ok)
}

func TestDigitsToNum(t *testing.T) {
	assert.Equal(t, uint64(0), digitsToNum(nil))
	assert.Equal(t, uint64(7254), digitsToNum([]uint64{7, 2, 5, 4}))
}
