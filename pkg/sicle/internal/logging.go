package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string
	output  io.Writer

	setupOnce sync.Once
	sink      io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Log records go to stdout and
// the file; without a path they go to stdout only.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces stdout as the console destination. It must be called
// before the first logger is requested.
func SetLogOutput(w io.Writer) {
	output = w
}

func setup() {
	setupOnce.Do(func() {
		console := output
		if console == nil {
			console = os.Stdout
		}
		sink = console

		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			return
		}
		logFile = f
		sink = io.MultiWriter(console, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	setup()
	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the logger handed to applications.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger the routing packages report
// misconfiguration through. It defaults to warnings and above.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelWarn)
		internalLogger = newJSONLogger(internalLevelVar).With("component", "sicle")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
