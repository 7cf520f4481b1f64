// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package gorun invokes the Go toolchain to build and run single problems and
// times those runs.
package gorun
