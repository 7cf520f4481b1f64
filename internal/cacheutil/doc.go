// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil stores small artifacts, such as timing history, in a
// per-user cache directory keyed by hashed names.
package cacheutil
