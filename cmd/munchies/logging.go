package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logFileName = "munchies.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the rotating log file in dir when debug is set
// Without debug the logger discards; the terminal belongs to the game either way
func setupLogging(dir string, debug bool, level string) (*log.Logger, *os.File) {
	if !debug {
		logger := log.New(io.Discard)
		log.SetDefault(logger)
		return logger, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		return setupLogging(dir, false, level)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("munchies-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "failed to rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return setupLogging(dir, false, level)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Level:           lvl,
		Prefix:          "munchies",
	})
	log.SetDefault(logger)
	return logger, f
}
