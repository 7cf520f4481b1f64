// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package timing keeps the last measured mean run time of each problem so
// successive `eulerctl time` runs can be compared.
package timing
