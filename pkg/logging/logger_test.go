package logging

import (
	"os"
	"strings"
	"testing"
)

func TestSessionIDIsStable(t *testing.T) {
	first := GetSessionID()
	second := GetSessionID()

	if first == "" {
		t.Fatal("session ID should not be empty")
	}
	if first != second {
		t.Errorf("session ID changed between calls: %q vs %q", first, second)
	}
}

func TestNewLoggerWritesEntries(t *testing.T) {
	logger, err := NewLogger("test-component")
	if err != nil {
		t.Skipf("file logging unavailable in this environment: %v", err)
	}
	defer logger.Close()

	logger.Infof("hello %s", "world")
	logger.Errorf("failure %d", 42)

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "[test-component] [INFO] hello world") {
		t.Errorf("missing info entry in log: %s", content)
	}
	if !strings.Contains(content, "[test-component] [ERROR] failure 42") {
		t.Errorf("missing error entry in log: %s", content)
	}
}

func TestLoggerCloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger("close-test")
	if err != nil {
		t.Skipf("file logging unavailable in this environment: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
