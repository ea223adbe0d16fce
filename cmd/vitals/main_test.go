package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/use-agent/vitals/config"
)

func TestInitLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	initLogger(config.LogConfig{Level: "warn", Format: "text"})
	_, isText := slog.Default().Handler().(*slog.TextHandler)
	assert.True(t, isText)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	initLogger(config.LogConfig{Level: "debug", Format: "json"})
	_, isJSON := slog.Default().Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
