// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package problems holds one file per Project Euler solution. Each file
// registers its solver with the problem package from init(); new files are
// created with `eulerctl scaffold <n>`.
package problems
