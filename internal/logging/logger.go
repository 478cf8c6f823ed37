package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   *zap.Logger
	logFile  *os.File
	filePath string
)

// LogLevelEnvVar is the environment variable that controls logging verbosity
// when no level is configured.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "LUNITOOL_LOG_LEVEL"

// DefaultLogFile is tried first when Options.File is empty.
const DefaultLogFile = "/var/log/lunitool.log"

// Options configures Initialize.
type Options struct {
	// Level is one of debug, info, warn, error. Empty falls back to
	// LUNITOOL_LOG_LEVEL and then to info.
	Level string
	// File receives console-formatted entries. Empty means DefaultLogFile,
	// falling back to lunitool.log in the temp directory.
	File string
	// Buffer, when set, receives a copy of every entry for the log panel.
	Buffer *Buffer
}

// Initialize builds the global logger. Nothing is ever written to stdout,
// which belongs to the terminal UI.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	zapLevel := ParseLevel(level)

	var cores []zapcore.Core

	f, path, err := openLogFile(opts.File)
	if err == nil {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(f),
			zapLevel,
		))
	}

	if opts.Buffer != nil {
		cores = append(cores, opts.Buffer.Core(zapLevel))
	}

	closeFile()
	logFile = f
	filePath = path

	if len(cores) == 0 {
		logger = zap.NewNop()
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	if err != nil {
		logger.Warn("Log file unavailable, logging to panel only", zap.Error(err))
	}
	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names yield info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func openLogFile(path string) (*os.File, string, error) {
	candidates := []string{path}
	if path == "" {
		candidates = []string{DefaultLogFile, filepath.Join(os.TempDir(), "lunitool.log")}
	}

	var lastErr error
	for _, p := range candidates {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			return f, p, nil
		}
		lastErr = err
	}
	return nil, "", fmt.Errorf("failed to open log file: %w", lastErr)
}

func closeFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FilePath returns the log file in use, or "" when only the panel buffer
// receives entries.
func FilePath() string {
	return filePath
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// Sync flushes any buffered log entries and closes the log file.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
	closeFile()
}
