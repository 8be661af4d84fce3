package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Defaults used when the environment does not override them.
const (
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultHostKeyPath = "/app/keys/host_key"
	DefaultLogLevel    = "info"
	DefaultFPS         = 60
)

// Settings holds everything read from the environment.
type Settings struct {
	SSHHost     string // SSH_HOST
	SSHPort     string // SSH_PORT
	HostKeyPath string // SSH_HOST_KEY
	LogLevel    string // ASTEROIDS_LOG_LEVEL: debug, info, warn, error
	LogFile     string // ASTEROIDS_LOG_FILE, empty for the default sink
	Seed        int64  // ASTEROIDS_SEED, 0 picks a seed per game
	FPS         int    // ASTEROIDS_FPS
}

// ErrInvalidFPS is returned when ASTEROIDS_FPS is not positive.
var ErrInvalidFPS = errors.New("config: ASTEROIDS_FPS must be positive")

// Load reads Settings from the environment.
func Load() (Settings, error) {
	s := Settings{
		SSHHost:     GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:     GetEnv("SSH_PORT", DefaultSSHPort),
		HostKeyPath: GetEnv("SSH_HOST_KEY", DefaultHostKeyPath),
		LogLevel:    GetEnv("ASTEROIDS_LOG_LEVEL", DefaultLogLevel),
		LogFile:     GetEnv("ASTEROIDS_LOG_FILE", ""),
	}

	var err error
	if s.Seed, err = GetEnvInt64("ASTEROIDS_SEED", 0); err != nil {
		return s, err
	}
	if s.FPS, err = GetEnvInt("ASTEROIDS_FPS", DefaultFPS); err != nil {
		return s, err
	}
	if s.FPS <= 0 {
		return s, ErrInvalidFPS
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return s, fmt.Errorf("ASTEROIDS_LOG_LEVEL: %w", err)
	}
	return s, nil
}

// NewLogger creates a logger writing to w at the configured level.
func (s Settings) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "asteroids",
		ReportTimestamp: true,
	})
}

// OpenLogFile opens LogFile for appending. With no LogFile configured it
// returns fallback and a no-op closer.
func (s Settings) OpenLogFile(fallback io.Writer) (io.Writer, func() error, error) {
	if s.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
