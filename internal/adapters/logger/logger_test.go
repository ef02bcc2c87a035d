package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blazerun/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer, with colors disabled so
// the output is deterministic.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(*logger.Logger)
		want string
	}{
		{"warn", func(l *logger.Logger) { l.Warn("no debug support") }, "! no debug support\n"},
		{"error", func(l *logger.Logger) { l.Error(errors.New("boom")) }, "✗ Error: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	inner := zerr.With(zerr.New("build tool not configured"), "project", "/src")
	lg.Error(zerr.Wrap(inner, "failed to build command"))

	out := buf.String()
	assert.Contains(t, out, "Error: failed to build command")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ build tool not configured (project=/src)")
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("plain"),
			wantMessages: []string{"plain"},
		},
		{
			name:         "zerr with metadata stays one entry",
			err:          zerr.With(zerr.With(zerr.New("base"), "k1", "v1"), "k2", 2),
			wantMessages: []string{"base"},
		},
		{
			name:         "wrapped zerr",
			err:          zerr.Wrap(zerr.New("inner"), "outer"),
			wantMessages: []string{"outer", "inner"},
		},
		{
			name:         "zerr wrapping stdlib error",
			err:          zerr.Wrap(fmt.Errorf("read: %w", errors.New("denied")), "load"),
			wantMessages: []string{"load", "read: denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			messages := make([]string, len(entries))
			for i, e := range entries {
				messages[i] = e.Message
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]logger.ErrorEntry{
		{Message: "outer\nsecond line"},
		{Message: "inner", Metadata: map[string]any{"b": 2, "a": "x"}},
	})

	want := strings.Join([]string{
		"Error: outer",
		"       second line",
		"",
		"  Caused by:",
		"    → inner (a=x, b=2)",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Warn("hello")
	lg.Error(errors.New("bad"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, "bad", rec["error"])

	buf.Reset()
	lg.SetJSON(false)
	lg.Warn("pretty again")
	assert.Equal(t, "! pretty again\n", buf.String())
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Go(func() {
			lg.Warn(fmt.Sprintf("message %d", i))
		})
	}
	wg.Go(func() { lg.SetJSON(true) })
	wg.Wait()
}

func TestLogger_ZeroValueSetJSON(t *testing.T) {
	lg := &logger.Logger{}
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Warn("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
}
