// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output provides sorting and emission utilities used by commands to
// present run reports as text tables, JSON or YAML.
package output
