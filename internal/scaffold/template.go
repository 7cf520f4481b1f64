// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scaffold

import "text/template"

// problemTemplate renders a new, unsolved problem file.
const problemTemplate = `// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Solution to problem {{ printf "%03d" .N }}
// https://projecteuler.net/problem={{ .N }}

package problems

import (
	"github.com/staranto/eulergo/internal/problem"
)

func init() {
	problem.Register({{ .N }}, solveProblem{{ .N }})
}

func solveProblem{{ .N }}() (uint64, bool) {
	return 0, false
}
`

// testTemplate renders the matching test. Replace the assertion with the
// official answer once the problem is solved.
const testTemplate = `// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveProblem{{ .N }}(t *testing.T) {
	_, ok := solveProblem{{ .N }}()
	assert.False(t, ok)
}
`

var (
	problemTmpl = template.Must(template.New("problem").Parse(problemTemplate))
	testTmpl    = template.Must(template.New("test").Parse(testTemplate))
)
