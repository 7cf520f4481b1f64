// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveProblem7(t *testing.T) {
	got, ok := solveProblem7()
	assert.True(t, ok)
	assert.Equal(t, uint64(104743), got)
}
