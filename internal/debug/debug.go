package debug

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// DefaultPath returns the log file used when --debug is given without a path.
func DefaultPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "fitpro", "debug.log")
}

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	mu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = newLogger(f)
	mu.Unlock()

	Log("debug logging enabled", "path", path)
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "fitpro",
	})
}

// Close closes the debug log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = nil
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Log writes a debug message with optional key/value pairs.
func Log(msg string, keyvals ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Debug(msg, keyvals...)
}

// Warn writes a warning with optional key/value pairs.
func Warn(msg string, keyvals ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Warn(msg, keyvals...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log(name+" started")

	return func() {
		Log(name+" completed", "elapsed", time.Since(start))
	}
}
