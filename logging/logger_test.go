package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitLoggerLevel(t *testing.T) {
	if err := InitLogger(false, "warn"); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info enabled despite LOG_LEVEL=warn")
	}
	if !Logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn disabled despite LOG_LEVEL=warn")
	}
}

func TestInitLoggerBadLevelFallsBack(t *testing.T) {
	if err := InitLogger(false, "nonsense"); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	// Непонятный уровень игнорируется, остаётся уровень пресета
	if !Logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("development preset should keep debug enabled")
	}
}
