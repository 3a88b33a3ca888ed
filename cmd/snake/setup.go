package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadConfig loads configuration and applies the global log flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds a logger from the log config. Without a log file,
// output goes to fallback. The returned close func is never nil.
func newLogger(lc config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if lc.File != "" {
		path, pathErr := config.HomePath(lc.File)
		if pathErr != nil {
			return nil, nil, pathErr
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
