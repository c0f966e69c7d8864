// Package logging builds the zap logger postboard writes to a file. The
// terminal belongs to the TUI, so nothing is logged to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Level is a zap level name ("debug", "info", ...). Empty means info.
	Level string
	// Debug forces the debug level regardless of Level.
	Debug bool
	// File is the log destination. Empty means DefaultPath().
	File string
	// SessionID tags every entry. Empty means a fresh NewSessionID().
	SessionID string
}

// NewSessionID returns a random identifier for one postboard run.
func NewSessionID() string {
	return uuid.NewString()
}

// DefaultPath returns $XDG_CACHE_HOME/postboard/postboard.log, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(dir, "postboard", "postboard.log"), nil
}

// New builds a JSON logger appending to opts.File.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = l
	}
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	path := opts.File
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	session := opts.SessionID
	if session == "" {
		session = NewSessionID()
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.InitialFields = map[string]any{"session": session}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
