// Package debug provides optional file-based debug logging.
//
// When the TREELINE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op. A host
// application may also call Init directly to choose the path itself.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile *os.File
	checked bool
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path, overriding the
// TREELINE_DEBUG environment variable.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp. It is a no-op
// unless Init has been called or TREELINE_DEBUG is set.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !checked {
		checked = true
		if path := os.Getenv("TREELINE_DEBUG"); path != "" {
			initLocked(path)
		}
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
