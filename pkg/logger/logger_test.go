package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Info("entry saved", "id", 42)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Fatalf("Log directory was not created: %s", dir)
	}
	data, err := os.ReadFile(filepath.Join(dir, "healthscribe.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "entry saved") {
		t.Errorf("Expected log file to contain message, got %q", data)
	}
}

func TestDebugLevelFiltering(t *testing.T) {
	if err := Init(Config{}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden")
	Warn("visible", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message should be filtered at info level, got %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "key=value") {
		t.Errorf("Expected warn message with fields, got %q", out)
	}
}
