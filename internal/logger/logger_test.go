/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/cssvalues/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logger.LevelInfo)
	})

	logger.SetLevel(logger.LevelWarn)
	logger.Info("hidden %d", 1)
	logger.Warn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "warn: shown 2") {
		t.Errorf("output = %q, want warning line", out)
	}

	buf.Reset()
	logger.SetLevel(logger.LevelDebug)
	logger.Debug("trace %s", "x")
	if !strings.Contains(buf.String(), "debug: trace x") {
		t.Errorf("output = %q, want debug line", buf.String())
	}
}

func TestZapSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	logger.Zap().Named("factory").Info("structured")
	if !strings.Contains(buf.String(), "structured") {
		t.Errorf("output = %q, want structured message", buf.String())
	}
}
