package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "vi-skier.log"
	maxLogSize  = 10 * 1024 * 1024

	envLogLevel  = "VI_SKIER_LOG_LEVEL"
	envLogFormat = "VI_SKIER_LOG_FORMAT"
)

// setupLogging routes logrus into logs/vi-skier.log when debug is on
// The terminal owns stdout and stderr, so with debug off all log output is discarded
// Returns the open log file, or nil when logging is disabled
func setupLogging(debug bool) *os.File {
	if !debug {
		logrus.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateErr := rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}

	logrus.SetOutput(f)
	logrus.SetLevel(logLevel())
	if strings.EqualFold(os.Getenv(envLogFormat), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	if rotateErr != nil {
		logrus.WithError(rotateErr).Warn("log rotation failed, appending to oversized log")
	}
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("vi-skier-%s.log", stamp))
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate %s: %w", logPath, err)
	}
	return nil
}

func logLevel() logrus.Level {
	raw := os.Getenv(envLogLevel)
	if raw == "" {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}
