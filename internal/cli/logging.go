package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/llehouerou/encore/internal/config"
)

// newLogger opens the log file in append mode. The terminal belongs to
// the UI, so logs never go to stderr. An empty path discards logs.
func newLogger(cfg config.LogConfig) (*slog.Logger, *os.File, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("pid", os.Getpid()), f, nil
}
