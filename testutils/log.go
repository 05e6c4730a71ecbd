package testutils

import (
	"bytes"
	"log/slog"
)

// NewLogger returns a debug level logger and the buffer that it will be written to
func NewLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
