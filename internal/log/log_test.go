// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	e := &log.Entry{
		Level:     log.WarnLevel,
		Message:   "sieve grew",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Fields:    log.Fields{"len": 100},
	}
	require.NoError(t, h.HandleLog(e))
	assert.Equal(t, "2026-01-02 03:04:05 W sieve grew len=100\n", buf.String())
}

func TestCustomHandler_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: &CustomHandler{Writer: &buf}, Level: log.DebugLevel}
	logger.WithError(errors.New("boom")).Error("run failed")
	assert.Contains(t, buf.String(), " E run failed error=boom")
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"nonsense", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(EnvLevel, tt.env)
			InitLogger()
			l, ok := log.Log.(*log.Logger)
			require.True(t, ok)
			assert.Equal(t, tt.want, l.Level)
		})
	}
}
