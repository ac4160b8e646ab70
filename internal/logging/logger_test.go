package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerWritesJSONFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(&Config{
		LogDir:       logDir,
		FileLevel:    zapcore.InfoLevel,
		ConsoleLevel: zapcore.DebugLevel,
	})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("scan started", String("path", "src"), Int("files", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(logDir, "promptgen.log"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, `"scan started"`) || !strings.Contains(line, `"files":3`) {
		t.Errorf("log line = %s", line)
	}
}

func TestFileLevelFiltersDebug(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(&Config{
		LogDir:    logDir,
		FileLevel: zapcore.InfoLevel,
	})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("hidden detail")
	_ = logger.Sync()

	data, _ := os.ReadFile(filepath.Join(logDir, "promptgen.log"))
	if strings.Contains(string(data), "hidden detail") {
		t.Error("debug entries must not reach an info-level file log")
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
	logger.With(String("k", "v")).Named("sub").Info("e")
	if err := logger.Sync(); err != nil {
		t.Errorf("nop sync = %v", err)
	}
}
