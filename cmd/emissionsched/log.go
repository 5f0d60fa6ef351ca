// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to standard output as well
// as the write-end pipe of an initialized log rotator when file logging is
// enabled.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.  It is nil when file logging is disabled.
	logRotator *rotator.Rotator

	// log is the logger for the main schedule evaluation.
	log = backendLog.Logger("SCHD")

	// prgLog is the logger used by the progress logger while evaluating
	// long schedules.
	prgLog = backendLog.Logger("PROG")
)

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before the log
// rotator is used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// setLogLevel sets the logging level of all subsystem loggers and returns
// whether the provided level was valid.
func setLogLevel(levelStr string) bool {
	level, ok := slog.LevelFromString(levelStr)
	if !ok {
		return false
	}
	log.SetLevel(level)
	prgLog.SetLevel(level)
	return true
}
