package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init configures slog to write to stdout and, when logDir is non-empty,
// a log file as well. It returns the logger and a close func for the file
// (a no-op when only stdout is used).
func Init(logDir string) (*slog.Logger, func()) {
	if logDir == "" {
		logDir = os.Getenv("LOG_DIR")
	}
	if logDir == "" {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		return logger, func() {}
	}

	_ = os.MkdirAll(logDir, 0o755)
	filePath := filepath.Join(logDir, "carpark.log")
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		logger.Error("failed to open log file; falling back to stdout only", "error", err)
		return logger, func() {}
	}

	mw := io.MultiWriter(f, os.Stdout)
	logger := slog.New(slog.NewTextHandler(mw, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// keep legacy stdlib log output aligned
	log.SetOutput(mw)
	return logger, func() { _ = f.Close() }
}
