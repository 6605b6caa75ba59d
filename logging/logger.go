package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger  *slog.Logger
	mu      sync.RWMutex
	logFile *os.File
	inited  bool
	lazy    sync.Once
)

// Config selects level, destination and format for the global logger.
type Config struct {
	Level      string // "debug", "info", "warn" or "error"; default info
	OutputPath string // empty for stderr, otherwise a file path
	Format     string // "json" or "text"; default text
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init configures the global logger. Calling it twice without an
// intervening Close is an error.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if inited {
		return fmt.Errorf("logging: already initialized, Close first")
	}

	var w io.Writer = os.Stderr
	if cfg.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o750); err != nil {
			return err
		}
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		w = f
		logFile = f
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var h slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(h)
	inited = true
	return nil
}

// InitDefault sets up an info-level text logger on stderr. Safe to
// call any number of times; only the first has an effect.
func InitDefault() {
	mu.Lock()
	defer mu.Unlock()
	if inited {
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	inited = true
}

// Close flushes and releases the log file, if any, and allows Init to
// run again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if !inited {
		return nil
	}
	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	logger = nil
	inited = false
	lazy = sync.Once{}
	return err
}

// GetLogger returns the global logger, initializing the stderr default
// on first use if Init was never called.
func GetLogger() *slog.Logger {
	mu.RLock()
	if inited {
		l := logger
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	lazy.Do(InitDefault)

	mu.RLock()
	l := logger
	mu.RUnlock()
	return l
}

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }

func Info(msg string, args ...any) { GetLogger().Info(msg, args...) }

func Warn(msg string, args ...any) { GetLogger().Warn(msg, args...) }

func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }
