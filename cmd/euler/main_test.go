// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealMain(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"solved", []string{"euler", "32"}, 0, "45228\n", ""},
		{"no args", []string{"euler"}, 1, "", "usage"},
		{"not a number", []string{"euler", "abc"}, 1, "", "invalid problem number"},
		{"zero", []string{"euler", "0"}, 1, "", "invalid problem number"},
		{"unregistered", []string{"euler", "998"}, 1, "", "problem 998"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := realMain(tt.args, &out, &errOut)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out.String())
			assert.Contains(t, errOut.String(), tt.wantErr)
		})
	}
}
