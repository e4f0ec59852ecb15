/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp        = "app"
	SourceWeb        = "web"
	SourceWebRequest = "web_request"
	SourceDB         = "db"
	SourceBatch      = "batch"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	derivedMu sync.Mutex
	derived   []*log.Logger
)

// Init configures the base logger and stdlib log output. Logs go to stderr
// so that commands can stream CSV or JSON on stdout.
func Init() {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(os.Stderr, log.Options{
			TimeFunction:    log.NowUTC,
			TimeFormat:      time.RFC3339Nano,
			Level:           log.InfoLevel,
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		})

		stdLogger := baseLogger.With("source", SourceApp).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

// SetLevel changes the level of the base logger and of every logger
// handed out by Logger.
func SetLevel(level string) error {
	Init()

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	derivedMu.Lock()
	defer derivedMu.Unlock()

	baseLogger.SetLevel(lvl)

	for _, l := range derived {
		l.SetLevel(lvl)
	}

	return nil
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()

	l := baseLogger.With("source", source)

	derivedMu.Lock()
	derived = append(derived, l)
	derivedMu.Unlock()

	return l
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
func StdLogger(source string) *stdlog.Logger {
	Init()
	return baseLogger.With("source", source).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}
