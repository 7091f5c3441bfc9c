package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger defines the logging interface used throughout the application.
// It separates internal diagnostics (Info, Warning, Error) from user-facing
// messages (StatusMessage, Success).
type Logger interface {
	// Info logs an informational message for debugging purposes.
	// Shown only when verbose mode is enabled.
	//
	// The format string follows fmt.Printf style formatting.
	Info(format string, args ...interface{})

	// Warning logs a warning message. Warnings indicate potential issues
	// that are not fatal for the run; they are shown only in verbose mode.
	//
	// The format string follows fmt.Printf style formatting.
	Warning(format string, args ...interface{})

	// Error logs an error message. Errors are always shown to the user
	// regardless of verbosity.
	//
	// The format string follows fmt.Printf style formatting.
	Error(format string, args ...interface{})

	// StatusMessage reports progress on the diagnostic stream. Status
	// messages are suppressed in quiet mode.
	//
	// The format string follows fmt.Printf style formatting.
	StatusMessage(format string, args ...interface{})

	// Success reports successful completion to the user on stdout.
	//
	// The format string follows fmt.Printf style formatting.
	Success(format string, args ...interface{})
}

// DefaultLogger implements Logger on top of log/slog, writing structured
// diagnostics and user messages to the configured streams.
type DefaultLogger struct {
	mu      sync.Mutex
	logger  *slog.Logger
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new Logger instance writing to the standard streams.
func New(verbose bool) Logger {
	return NewWithOutput(verbose, os.Stdout, os.Stderr)
}

// NewWithOutput creates a DefaultLogger with custom output writers
func NewWithOutput(verbose bool, stdout, stderr io.Writer) *DefaultLogger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	return &DefaultLogger{
		logger:  slog.New(slog.NewTextHandler(stderr, opts)),
		verbose: verbose,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Info logs an informational message (verbose only)
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.verbose {
		return
	}

	l.logger.Info(fmt.Sprintf(format, args...))
}

// Warning logs a warning message (verbose only)
func (l *DefaultLogger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.verbose {
		return
	}

	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message, always shown to the user
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.verbose {
		l.logger.Error(msg)
	}

	_, _ = fmt.Fprintf(l.stderr, "❌ %s\n", msg)
}

// StatusMessage prints a progress message to the diagnostic stream
func (l *DefaultLogger) StatusMessage(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.verbose {
		return
	}

	_, _ = fmt.Fprintf(l.stderr, "%s\n", fmt.Sprintf(format, args...))
}

// Success prints a success message to stdout
func (l *DefaultLogger) Success(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintf(l.stdout, "✅ %s\n", fmt.Sprintf(format, args...))
}

// SetStdout sets a custom writer for user-facing stdout messages.
// This method is thread-safe and is primarily intended for testing.
func (l *DefaultLogger) SetStdout(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = w
}

// SetStderr sets a custom writer for diagnostic stderr messages.
// NOTE: This does not affect where structured log messages from slog are directed.
// This method is thread-safe and is primarily intended for testing.
func (l *DefaultLogger) SetStderr(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
}
