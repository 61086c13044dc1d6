package termatlas

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	logger().Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Error("configured logger received no output")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(nil)
	if logger() == nil {
		t.Fatal("logger() returned nil")
	}
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}
