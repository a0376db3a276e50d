package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultDir is where debug logs go, relative to the working directory
	DefaultDir  = "logs"
	logFileName = "ascii-race.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Logger is the process-wide logger, a no-op until Init enables debug output
var Logger = zap.NewNop()

// Init configures Logger. With debug off it stays a no-op: the race owns the
// terminal, so nothing is ever written to stdout or stderr.
// With debug on it writes a development log to dir, rotating an oversized previous file.
func Init(debug bool, dir string) (*zap.Logger, error) {
	if !debug {
		Logger = zap.NewNop()
		return Logger, nil
	}

	path, err := prepareLogFile(dir)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	Logger = l
	return Logger, nil
}

// prepareLogFile creates dir and rotates the current log when it exceeds maxLogSize
func prepareLogFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("ascii-race-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return "", fmt.Errorf("failed to rotate log file: %w", err)
		}
	}
	return path, nil
}
