package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	out     io.Writer
	file    *os.File
	mu      sync.Mutex
	enabled bool
	now     = time.Now
)

// EnvVar turns on file logging when set to a non-empty value
const EnvVar = "MIDINOTE_DEBUG"

// EnableFromEnv calls Enable if EnvVar is set and reports whether it did
func EnableFromEnv(getenv func(string) string) (bool, error) {
	if getenv(EnvVar) == "" {
		return false, nil
	}
	if err := Enable(); err != nil {
		return false, err
	}
	return true, nil
}

// Enable starts debug logging to ~/.config/midinote/debug.log
func Enable() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(homeDir, ".config", "midinote")

	// Ensure directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	mu.Lock()
	closeFile()
	file = f
	mu.Unlock()

	SetOutput(f)
	return nil
}

// SetOutput sends debug logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		closeFile()
		out = nil
		enabled = false
		return
	}

	if file != nil && w != io.Writer(file) {
		closeFile()
	}
	out = w
	enabled = true

	// Write directly (can't call Log - we hold the mutex)
	write("debug", "=== Debug logging started ===")
}

// Disable stops debug logging
func Disable() {
	SetOutput(nil)
}

// Enabled reports whether logging is on
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a message to the debug log
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	write(category, fmt.Sprintf(format, args...))
}

// LogEvery logs only every N calls (use for high-frequency events)
var counters = make(map[string]int)

func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	key := category + format
	counters[key]++
	count := counters[key]
	mu.Unlock()

	if count%n == 0 {
		Log(category, format+" (every %d, count=%d)", append(args, n, count)...)
	}
}

// caller holds mu
func write(category, msg string) {
	ts := now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %-10s %s\n", ts, category, msg)
	if file != nil && out == io.Writer(file) {
		file.Sync() // flush immediately so we see logs even on crash
	}
}

// caller holds mu
func closeFile() {
	if file != nil {
		file.Close()
		file = nil
	}
}
