package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(Options{Level: slog.LevelInfo, Writer: &buf})
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("table loaded", "table", "iris", "rows", 150)

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, "table=iris"), out)
	assert.Assert(t, strings.Contains(out, "rows=150"), out)
}

func TestMultiHandler(t *testing.T) {
	var debug, warn bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	assert.Assert(t, m.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(m).With("run_id", "r1").WithGroup("plot")
	logger.Info("rendered", "groups", 3)
	logger.Warn("skipped", "dropped", 2)

	assert.Assert(t, strings.Contains(debug.String(), "msg=rendered"))
	assert.Assert(t, strings.Contains(debug.String(), "plot.groups=3"))
	assert.Assert(t, !strings.Contains(warn.String(), "rendered"))
	assert.Assert(t, strings.Contains(warn.String(), "run_id=r1"))
	assert.Assert(t, strings.Contains(warn.String(), "plot.dropped=2"))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	assert.NilError(t, err)
	assert.Equal(t, level, slog.LevelDebug)

	level, err = ParseLevel("")
	assert.NilError(t, err)
	assert.Equal(t, level, slog.LevelInfo)

	_, err = ParseLevel("loud")
	assert.Assert(t, err != nil)
}
