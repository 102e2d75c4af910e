// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, cloning, formatters and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestWithFieldClones(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	child := base.WithName("convert").WithField("category", "length")

	base.Info("base")
	child.Info("child", Fields{"from": "km"})

	lines := decodeLines(t, buf)
	if _, ok := lines[0]["category"]; ok {
		t.Error("parent logger must not see child fields")
	}
	if lines[1]["category"] != "length" || lines[1]["from"] != "km" {
		t.Errorf("child fields = %v", lines[1])
	}
	if lines[1]["logger"] != "convert" {
		t.Errorf("logger = %v, want convert", lines[1]["logger"])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{mrwerror.New("bad unit").WithCode(mrwerror.CodeInvalidUnit), "info"},
		{mrwerror.New("odd").WithCode(mrwerror.CodeInternal), "warn"},
		{mrwerror.New("db").WithCode(mrwerror.CodeDatabaseError), "error"},
		{fmt.Errorf("plain"), "error"},
		{fmt.Errorf("wrapped: %w", mrwerror.New("x").WithCode(mrwerror.CodeParseError)), "info"},
	}
	for _, tt := range tests {
		logger, buf := newBufferLogger(LevelTrace, FormatJSON)
		logger.LogError(tt.err)
		lines := decodeLines(t, buf)
		if len(lines) != 1 {
			t.Fatalf("LogError(%v) wrote %d lines", tt.err, len(lines))
		}
		if lines[0]["level"] != tt.want {
			t.Errorf("LogError(%v) level = %v, want %s", tt.err, lines[0]["level"], tt.want)
		}
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestTextFormatterStableOrder(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger = logger.WithRequestID("r1")
	logger.Info("done", Fields{"b": 2, "a": 1, "c": "x"})

	line := buf.String()
	if !strings.Contains(line, "[INF] (req=r1) done a=1 b=2 c=x") {
		t.Errorf("text line = %q", line)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.WithName("history").Info("appended", Fields{"tool": "bmi", "count": 3})

	line := buf.String()
	for _, want := range []string{`level=info`, `message="appended"`, `logger=history`, `count=3 tool="bmi"`} {
		if !strings.Contains(line, want) {
			t.Errorf("logfmt line %q missing %q", line, want)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if l, err := ParseLevel("WARNING"); err != nil || l != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("console"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("amortization").WithField("tool", "loan")
	time.Sleep(time.Millisecond)
	if d := timer.Stop(); d <= 0 {
		t.Errorf("Stop() = %v, want > 0", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["message"] != "amortization completed" || lines[0]["tool"] != "loan" {
		t.Errorf("timer line = %v", lines[0])
	}
	if _, ok := lines[0]["duration_ms"]; !ok {
		t.Error("timer line missing duration_ms")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	timer := logger.StartTimer("convert")
	timer.StopWithError(fmt.Errorf("unknown unit"))

	lines := decodeLines(t, buf)
	if lines[0]["level"] != "warn" || lines[0]["error"] != "unknown unit" {
		t.Errorf("line = %v", lines[0])
	}

	cancelled := logger.StartTimer("x")
	cancelled.Cancel()
	if cancelled.IsRunning() {
		t.Error("cancelled timer should not be running")
	}
}

func TestConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithField("n", n).Info("tick")
		}(i)
	}
	wg.Wait()
	if got := len(decodeLines(t, buf)); got != 20 {
		t.Errorf("got %d lines, want 20", got)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard logger should not enable any level")
	}
}
