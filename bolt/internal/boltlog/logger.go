// Package boltlog is a thin, level-gated wrapper over the standard log
// package, used by the bolt façade to report connection-fatal errors and
// protocol tracing without pulling in a third-party logging stack the
// teacher repo never used either.
package boltlog

import (
	"fmt"
	"log"
)

// Level orders log severities from least to most verbose.
type Level uint

const (
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelPrefixes = map[Level]string{
	LevelError: "[ERROR] ",
	LevelWarn:  "[WARN] ",
	LevelInfo:  "[INFO] ",
	LevelDebug: "[DEBUG] ",
}

// Printer is the sink a Logger writes formatted, level-prefixed lines to.
// The standard *log.Logger satisfies it.
type Printer interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
}

// Logger gates output by Level and prefixes each line with its severity.
type Logger struct {
	Printer Printer
	Level   Level
}

// New returns a Logger writing to the standard log package's default
// logger, at the given level.
func New(level Level) *Logger {
	return &Logger{Printer: log.Default(), Level: level}
}

func (l *Logger) enabled(level Level) bool {
	return l != nil && l.Level != LevelNone && l.Level >= level
}

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }

func (l *Logger) printf(level Level, format string, v ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.Printer.Printf(levelPrefixes[level]+format, v...)
}

// Error logs v at LevelError, joined the way fmt.Sprint does.
func (l *Logger) Error(v ...interface{}) { l.print(LevelError, v...) }

func (l *Logger) print(level Level, v ...interface{}) {
	if !l.enabled(level) || len(v) == 0 {
		return
	}
	l.Printer.Print(fmt.Sprintf(levelPrefixes[level]+"%v", fmt.Sprint(v...)))
}
