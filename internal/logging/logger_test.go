package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBufferCoreFormat(t *testing.T) {
	buf := NewBuffer(10)
	core := buf.Core(zapcore.InfoLevel).With([]zapcore.Field{zap.String("component", "wizard")})

	ent := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC),
		Message: "Task index repaired",
	}
	if ce := core.Check(ent, nil); ce == nil {
		t.Fatal("Check() should accept warn at info level")
	}
	if err := core.Write(ent, []zapcore.Field{zap.Int("index", 2)}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := buf.Lines()
	if len(lines) != 1 {
		t.Fatalf("Lines() len = %d, want 1", len(lines))
	}
	want := "13:04:05 WARN  Task index repaired component=wizard index=2"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}

	debug := zapcore.Entry{Level: zapcore.DebugLevel, Message: "hidden"}
	if ce := core.Check(debug, nil); ce != nil {
		t.Error("Check() should reject debug at info level")
	}
}

func TestBufferIsBounded(t *testing.T) {
	buf := NewBuffer(3)
	l := zap.New(buf.Core(zapcore.DebugLevel))
	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		l.Info(msg)
	}

	lines := buf.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() len = %d, want 3", len(lines))
	}
	for i, want := range []string{"three", "four", "five"} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("lines[%d] = %q, want suffix %q", i, lines[i], want)
		}
	}

	// Lines returns a copy.
	lines[0] = "mutated"
	if buf.Lines()[0] == "mutated" {
		t.Error("Lines() should return a copy")
	}
}

func TestInitializeWritesFileAndBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lunitool.log")
	buf := NewBuffer(0)

	if err := Initialize(Options{Level: "debug", File: path, Buffer: buf}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer Sync()

	Debug("Debug entry", zap.String("key", "value"))
	Info("Info entry")

	if FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", FilePath(), path)
	}
	if buf.Len() != 2 {
		t.Errorf("buffer has %d lines, want 2", buf.Len())
	}

	_ = GetLogger().Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Debug entry") || !strings.Contains(string(data), "Info entry") {
		t.Errorf("log file missing entries:\n%s", data)
	}
}

func TestInitializeLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "error")
	buf := NewBuffer(0)

	if err := Initialize(Options{File: filepath.Join(t.TempDir(), "l.log"), Buffer: buf}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer Sync()

	Warn("filtered")
	Error("kept")

	lines := buf.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "kept") {
		t.Errorf("Lines() = %v, want only the error entry", lines)
	}
}

func TestInitializeWithoutFileFallsBackToBuffer(t *testing.T) {
	buf := NewBuffer(0)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")

	if err := Initialize(Options{Level: "info", File: missing, Buffer: buf}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer Sync()

	if FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", FilePath())
	}
	if buf.Len() != 1 {
		t.Errorf("expected one warning about the missing file, got %v", buf.Lines())
	}
}
