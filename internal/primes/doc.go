// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package primes provides an incrementally grown prime sieve with memoized
// factorization. Each caller owns its own Cache; there is no shared instance.
package primes
