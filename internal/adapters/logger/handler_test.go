package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			buf := &bytes.Buffer{}
			h := logger.NewPrettyHandler(buf, nil)

			if h.Enabled(context.Background(), tt.level) {
				r := slog.NewRecord(time.Now(), tt.level, "message", 0)
				require.NoError(t, h.Handle(context.Background(), r))
			}
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}).
		WithAttrs([]slog.Attr{slog.String("file", "cascade.yaml")}).
		WithGroup("reload")

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "reloaded", 0)
	r.AddAttrs(slog.Int("options", 3))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t, "reloaded file=cascade.yaml reload.options=3\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	log := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("watch").WithGroup("event")
	log.Warn("file removed", slog.Group("op", slog.String("kind", "remove")), slog.Any("empty", slog.GroupValue()))

	assert.Equal(t, "! file removed watch.event.op.kind=remove\n", buf.String())
}

func TestPrettyHandler_SharedLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)

	log := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))
	log.Info("hidden")
	level.Set(slog.LevelInfo)
	log.Info("shown")

	assert.Equal(t, "shown\n", buf.String())
}
