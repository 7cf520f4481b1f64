// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package filters parses --filter expressions such as "status=solved" or
// "elapsed_ns>1000000" and matches them against JSON documents.
package filters
