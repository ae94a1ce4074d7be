// Package logger provides verbose logging for the quickread CLI.
// When verbose mode is enabled via the --verbose flag, pipeline steps
// (browser lookup, fetch, extraction, history) are printed to stderr.
//
// The reader UI owns the terminal while it runs, so callers redirect
// output to a file for that time with Redirect.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Redirect sends output to w until the returned function is called,
// which restores the previous writer.
func Redirect(w io.Writer) (restore func()) {
	mu.Lock()
	prev := output
	output = w
	mu.Unlock()

	return func() {
		mu.Lock()
		output = prev
		mu.Unlock()
	}
}

// RedirectToFile appends output to the file at path until the returned
// function is called. Nothing is opened unless verbose mode is on.
func RedirectToFile(path string) (restore func(), err error) {
	if !IsVerbose() {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	undo := Redirect(f)
	return func() {
		undo()
		_ = f.Close()
	}, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Timed logs how long a step took when the returned function is called.
//
//	defer logger.Timed("fetch %s", url)()
func Timed(format string, args ...any) func() {
	start := time.Now()
	return func() {
		Debug("%s took %s", fmt.Sprintf(format, args...), time.Since(start).Round(time.Millisecond))
	}
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}
