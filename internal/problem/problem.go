// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package problem

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknown is returned by Lookup when no solver is registered for a problem.
var ErrUnknown = errors.New("problem not registered")

// Solver computes the answer to one problem. The second return value is false
// while the problem is unsolved.
type Solver func() (uint64, bool)

// Registry maps problem numbers to their solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds s under problem n. Registering the same number twice is a
// programming error and panics.
func (r *Registry) Register(n int, s Solver) {
	if _, dup := r.solvers[n]; dup {
		panic(fmt.Sprintf("problem %d registered twice", n))
	}
	r.solvers[n] = s
}

// Lookup returns the solver for problem n.
func (r *Registry) Lookup(n int) (Solver, error) {
	s, ok := r.solvers[n]
	if !ok {
		return nil, fmt.Errorf("problem %d: %w", n, ErrUnknown)
	}
	return s, nil
}

// Numbers returns the registered problem numbers in ascending order.
func (r *Registry) Numbers() []int {
	out := make([]int, 0, len(r.solvers))
	for n := range r.solvers {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Default is the registry problem files add themselves to from init().
var Default = NewRegistry()

// Register adds s to the Default registry.
func Register(n int, s Solver) {
	Default.Register(n, s)
}

// Lookup finds problem n in the Default registry.
func Lookup(n int) (Solver, error) {
	return Default.Lookup(n)
}

// Numbers lists the problems in the Default registry.
func Numbers() []int {
	return Default.Numbers()
}

// Run invokes s and prints its answer to w, or a notice to ew when the problem
// is still unsolved. It reports whether an answer was printed.
func Run(w, ew io.Writer, n int, s Solver) bool {
	answer, ok := s()
	if !ok {
		fmt.Fprintf(ew, "Problem %d not solved yet\n", n)
		return false
	}
	fmt.Fprintln(w, answer)
	return true
}
