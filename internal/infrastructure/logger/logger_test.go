package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_WithKeepsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.With("repo", "octo/R").Info("refreshed", "count", 2)

	out := buf.String()
	require.Contains(t, out, "repo=octo/R")
	require.Contains(t, out, "count=2")
	require.Contains(t, out, "msg=refreshed")
}

func TestNew_Envs(t *testing.T) {
	for _, env := range []string{"dev", "prod", "test", ""} {
		require.NotNil(t, New(env), env)
	}
}
