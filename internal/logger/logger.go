package logger

import (
	"log"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message. The order defines the
// numerical value (TRACE=0, DEBUG=1, ...): a logger set to INFO shows INFO,
// WARN, ERROR and SUCCESS, but not DEBUG or TRACE.
type LogLevel int

const (
	TRACE   LogLevel = iota // most verbose, per-request wire detail
	DEBUG                   // detailed debugging information
	INFO                    // general progress
	WARN                    // warnings, e.g. protection hints
	ERROR                   // errors
	SUCCESS                 // notable findings, e.g. introspection enabled
)

// Logger holds one stdlib logger per level and a mutex for concurrent writes.
type Logger struct {
	infoLogger    *log.Logger
	warnLogger    *log.Logger
	errorLogger   *log.Logger
	debugLogger   *log.Logger
	traceLogger   *log.Logger
	successLogger *log.Logger
	mu            sync.Mutex
	minLevel      LogLevel
}

// NewLogger creates a Logger that suppresses messages below minLevel.
func NewLogger(minLevel LogLevel) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		infoLogger:    log.New(os.Stdout, "[INFO] ", flags),
		warnLogger:    log.New(os.Stderr, "[WARN] ", flags),
		errorLogger:   log.New(os.Stderr, "[ERROR] ", flags),
		debugLogger:   log.New(os.Stdout, "[DEBUG] ", flags),
		traceLogger:   log.New(os.Stdout, "[TRACE] ", flags),
		successLogger: log.New(os.Stdout, "[SUCCESS] ", flags),
		minLevel:      minLevel,
	}
}

func (l *Logger) log(level LogLevel, logger *log.Logger, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level >= l.minLevel {
		logger.Printf(format, v...)
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(INFO, l.infoLogger, format, v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(WARN, l.warnLogger, format, v...)
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(ERROR, l.errorLogger, format, v...)
}

// Debug logs a debug message. Only active if minLevel is DEBUG or lower.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(DEBUG, l.debugLogger, format, v...)
}

// Trace logs a trace message. Only active if minLevel is TRACE.
func (l *Logger) Trace(format string, v ...interface{}) {
	l.log(TRACE, l.traceLogger, format, v...)
}

// Success logs a success message, typically for confirmed findings.
func (l *Logger) Success(format string, v ...interface{}) {
	l.log(SUCCESS, l.successLogger, format, v...)
}

// SetMinLevel sets the minimum logging level.
func (l *Logger) SetMinLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}
