// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package problem defines the contract every puzzle solution implements and
// the registry the runner looks solutions up in.
package problem
