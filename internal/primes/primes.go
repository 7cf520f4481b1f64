// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package primes

import (
	"math"
)

// minExtension is the smallest growth NthPrime will ask for when the sieve
// does not yet hold enough primes.
const minExtension = 50

// Cache is an incrementally grown sieve of Eratosthenes plus a memo of prime
// factorizations. The sieve only ever grows; every index below Len() is fully
// resolved.
//
// A Cache is not safe for concurrent use. Every query may grow the sieve, so
// callers sharing one must serialize all calls.
type Cache struct {
	sieve      []bool
	factors    map[int][]int
	extensions int
}

// New returns a Cache whose sieve covers 0, 1 and 2.
func New() *Cache {
	return &Cache{
		sieve:   []bool{false, false, true},
		factors: make(map[int][]int),
	}
}

// WithCapacity returns a Cache whose sieve already covers every integer below
// n.
func WithCapacity(n int) *Cache {
	c := New()
	c.extendTo(n)
	return c
}

// Len returns the length of the resolved range [0, Len()).
func (c *Cache) Len() int {
	return len(c.sieve)
}

// Extensions returns how many times the sieve has actually grown.
func (c *Cache) Extensions() int {
	return c.extensions
}

// Memoized returns the number of stored factorizations.
func (c *Cache) Memoized() int {
	return len(c.factors)
}

// extendTo makes the sieve cover [0, n). The whole array is re-sieved, which
// is safe because striking an index only ever happens through one of its
// smaller prime factors.
func (c *Cache) extendTo(n int) {
	if len(c.sieve) >= n {
		return
	}

	for i := len(c.sieve); i < n; i++ {
		c.sieve = append(c.sieve, true)
	}
	c.sieve[0], c.sieve[1] = false, false

	for p := 2; p < n; p++ {
		if !c.sieve[p] {
			continue
		}
		for m := 2 * p; m < n; m += p {
			c.sieve[m] = false
		}
	}

	c.extensions++
}

// IsPrime reports whether n is prime, growing the sieve to cover n.
func (c *Cache) IsPrime(n int) bool {
	if n < 0 {
		return false
	}
	c.extendTo(n + 1)
	return c.sieve[n]
}

// NthPrime returns the prime at zero-based position n, so NthPrime(0) is 2.
func (c *Cache) NthPrime(n int) int {
	if n < 0 {
		n = 0
	}

	for {
		found := 0
		for i, prime := range c.sieve {
			if !prime {
				continue
			}
			if found == n {
				return i
			}
			found++
		}
		c.extendTo(len(c.sieve) + estimate(n))
	}
}

// estimate sizes the next sieve growth for NthPrime. It takes the larger of
// the prime number theorem bound and a flat 20% overshoot, never less than
// minExtension.
func estimate(n int) int {
	size := minExtension

	if n >= 3 {
		fn := float64(n)
		if pnt := int(1.05 * fn * (math.Log(fn) + math.Log(math.Log(fn)))); pnt > size {
			size = pnt
		}
	}
	if over := int(1.2 * float64(n)); over > size {
		size = over
	}

	return size
}

// LastPrimeBefore returns the largest prime strictly less than n, or 0 when
// there is none.
func (c *Cache) LastPrimeBefore(n int) int {
	if n <= 2 {
		return 0
	}
	c.extendTo(n + 1)

	last := 0
	for i := 2; i < n; i++ {
		if c.sieve[i] {
			last = i
		}
	}
	return last
}

// PrimesBelow returns every prime strictly less than n in ascending order.
// The result is empty, never nil, when n <= 2.
func (c *Cache) PrimesBelow(n int) []int {
	out := []int{}
	if n <= 2 {
		return out
	}
	c.extendTo(n + 1)

	for i := 2; i < n; i++ {
		if c.sieve[i] {
			out = append(out, i)
		}
	}
	return out
}

// PrimeFactors returns the prime factors of n in ascending order, repeated by
// multiplicity. Composite results are memoized. Values below 2 have no prime
// factors and yield an empty slice.
func (c *Cache) PrimeFactors(n int) []int {
	if n < 2 {
		return []int{}
	}

	// IsPrime also makes the sieve cover n, which the walk below relies on.
	if c.IsPrime(n) {
		return []int{n}
	}

	if known, ok := c.factors[n]; ok {
		return clone(known)
	}

	var out []int
	rest := n
	for p := 2; rest > 1; p++ {
		// Once no prime up to sqrt(rest) divides it, rest is itself prime.
		if c.sieve[rest] || p*p > rest {
			out = append(out, rest)
			break
		}
		if known, ok := c.factors[rest]; ok {
			out = append(out, known...)
			break
		}
		if !c.sieve[p] {
			continue
		}
		for rest%p == 0 {
			out = append(out, p)
			rest /= p
		}
	}

	c.factors[n] = out
	return clone(out)
}

func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
