package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const debugLogName = "playtetris-debug.log"

// newLogger builds the run's logger. The terminal is in raw mode while the
// game runs, so logs only ever go to a file.
func newLogger(cfg config) (zerolog.Logger, io.Closer, error) {
	path := cfg.logFile
	if path == "" && cfg.debug {
		path = filepath.Join(os.TempDir(), debugLogName)
	}
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	session := "unknown"
	if id, err := uuid.NewUUID(); err == nil {
		session = id.String()
	}

	logger := zerolog.New(file).
		Level(cfg.logLevel).
		With().
		Timestamp().
		Str("session", session).
		Logger()
	return logger, file, nil
}
