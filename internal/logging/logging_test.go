package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultLevel(t *testing.T) {
	logger := New(false)
	if logger == nil {
		t.Fatal("New returned nil")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be disabled by default")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn level should be enabled by default")
	}
}

func TestNew_DebugLevel(t *testing.T) {
	logger := New(true)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled in debug mode")
	}
}
