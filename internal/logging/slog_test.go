package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextLogger(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(&buf, level, "text")
	require.NoError(t, err)
	return l, &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTextLogger(t, "debug")
	ctx := context.Background()

	log.Debug(ctx, "debounce scheduled", "delay", "500ms")
	log.Info(ctx, "session restored", "user", "u1")
	log.Warn(ctx, "list request failed", "seq", 3)
	log.Error(ctx, "storage unavailable", "backend", "redis")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	for i, want := range []string{
		`level=DEBUG msg="debounce scheduled" delay=500ms`,
		`level=INFO msg="session restored" user=u1`,
		`level=WARN msg="list request failed" seq=3`,
		`level=ERROR msg="storage unavailable" backend=redis`,
	} {
		assert.Contains(t, lines[i], want)
	}
}

func TestSlogLogger_LevelFilters(t *testing.T) {
	log, buf := newTextLogger(t, "warn")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}

func TestSlogLogger_WithKeepsParentClean(t *testing.T) {
	log, buf := newTextLogger(t, "info")
	ctx := context.Background()

	child := log.With("component", "search")
	child.Info(ctx, "child")
	log.Info(ctx, "parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "component=search")
	assert.NotContains(t, lines[1], "component=search")
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	l.Error(context.TODO(), "nothing happens")
	l.With("k", "v").Info(context.TODO(), "still nothing")
}
