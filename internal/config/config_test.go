package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Tutor.MaxAttempts != 5 {
		t.Errorf("tutor.max_attempts = %d, want 5", cfg.Tutor.MaxAttempts)
	}
	if cfg.Tutor.QuizProbability != 0.5 {
		t.Errorf("tutor.quiz_probability = %v, want 0.5", cfg.Tutor.QuizProbability)
	}
	if cfg.Tutor.InitialRepeat != 2 {
		t.Errorf("tutor.initial_repeat = %d, want 2", cfg.Tutor.InitialRepeat)
	}
	if !cfg.Vocab.AllowDuplicates {
		t.Error("vocab.allow_duplicates should default to true")
	}
	if cfg.Reminder.SweepInterval != 30*time.Second {
		t.Errorf("reminder.sweep_interval = %v, want 30s", cfg.Reminder.SweepInterval)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LINGVO_TUTOR_MAX_ATTEMPTS", "9")
	t.Setenv("LINGVO_LOG_LEVEL", "debug")
	t.Setenv("LINGVO_VOCAB_ALLOW_DUPLICATES", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Tutor.MaxAttempts != 9 {
		t.Errorf("tutor.max_attempts = %d, want 9", cfg.Tutor.MaxAttempts)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Vocab.AllowDuplicates {
		t.Error("vocab.allow_duplicates should be overridden to false")
	}
}

func TestNewLogger(t *testing.T) {
	log, closer, err := NewLogger(LogConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if closer != nil {
		t.Error("closer should be nil for stderr logging")
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}
}

func TestNewLoggerRejectsBadInput(t *testing.T) {
	if _, _, err := NewLogger(LogConfig{Level: "loud", Format: "text"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, _, err := NewLogger(LogConfig{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := t.TempDir() + "/lingvo.log"
	log, closer, err := NewLogger(LogConfig{Level: "info", Format: "text", File: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if closer == nil {
		t.Fatal("expected a closer for file logging")
	}
	log.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}
