package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ASTEROIDS_TEST_VALUE", "set")

	if got := GetEnv("ASTEROIDS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected %q", got, "set")
	}
	if got := GetEnv("ASTEROIDS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("ASTEROIDS_TEST_INT", "42")
	t.Setenv("ASTEROIDS_TEST_BAD", "forty")

	if n, err := GetEnvInt("ASTEROIDS_TEST_INT", 1); err != nil || n != 42 {
		t.Errorf("GetEnvInt() = %d, %v; expected 42", n, err)
	}
	if n, err := GetEnvInt("ASTEROIDS_TEST_MISSING", 7); err != nil || n != 7 {
		t.Errorf("GetEnvInt() = %d, %v; expected fallback 7", n, err)
	}
	if _, err := GetEnvInt("ASTEROIDS_TEST_BAD", 7); err == nil || !strings.Contains(err.Error(), "ASTEROIDS_TEST_BAD") {
		t.Errorf("expected an error naming the variable, got %v", err)
	}
	if _, err := GetEnvInt64("ASTEROIDS_TEST_BAD", 7); err == nil {
		t.Error("expected GetEnvInt64 to reject a non-number")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SSH_HOST", "SSH_PORT", "SSH_HOST_KEY", "ASTEROIDS_LOG_LEVEL", "ASTEROIDS_LOG_FILE", "ASTEROIDS_SEED", "ASTEROIDS_FPS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.SSHPort != DefaultSSHPort || s.FPS != DefaultFPS || s.Seed != 0 || s.LogLevel != DefaultLogLevel {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("ASTEROIDS_SEED", "12345")
	t.Setenv("ASTEROIDS_FPS", "30")
	t.Setenv("ASTEROIDS_LOG_LEVEL", "debug")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.SSHPort != "2323" || s.Seed != 12345 || s.FPS != 30 || s.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", s)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Run("zero_fps", func(t *testing.T) {
		t.Setenv("ASTEROIDS_FPS", "0")
		if _, err := Load(); !errors.Is(err, ErrInvalidFPS) {
			t.Errorf("expected ErrInvalidFPS, got %v", err)
		}
	})

	t.Run("bad_level", func(t *testing.T) {
		t.Setenv("ASTEROIDS_LOG_LEVEL", "chatty")
		if _, err := Load(); err == nil {
			t.Error("expected an error for an unknown log level")
		}
	})

	t.Run("bad_seed", func(t *testing.T) {
		t.Setenv("ASTEROIDS_SEED", "abc")
		if _, err := Load(); err == nil {
			t.Error("expected an error for a non-numeric seed")
		}
	})
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Settings{LogLevel: "warn"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	w, closeFn, err := Settings{}.OpenLogFile(io.Discard)
	if err != nil || w != io.Discard {
		t.Fatalf("expected the fallback writer, got %v, %v", w, err)
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "game.log")
	w, closeFn, err = Settings{LogFile: path}.OpenLogFile(io.Discard)
	if err != nil {
		t.Fatalf("OpenLogFile() error: %v", err)
	}
	io.WriteString(w, "line\n")
	if err := closeFn(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Errorf("log file contains %q, %v", data, err)
	}
}
