// Package logging wires structured logging for the dlx CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init builds a logrus logger at the given level. When file is non-empty,
// output goes to a size-rotated log file; otherwise to stderr.
func Init(level, file string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetLevel(parsed)

	out, err := buildOutput(file)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(out)

	if file != "" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

// buildOutput creates the log writer, rotating when a file path is given.
func buildOutput(file string) (io.Writer, error) {
	if file == "" {
		return os.Stderr, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}, nil
}
