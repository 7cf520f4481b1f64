// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package scaffold creates new problem files from templates and discovers the
// ones already on disk.
package scaffold
