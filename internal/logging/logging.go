package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

var verbosityNames = map[string]VerbosityLevel{
	"verbose": Verbose,
	"info":    Info,
	"warning": Warning,
	"error":   Error,
	"off":     Off,
}

// ParseVerbosity parses a verbosity name (Verbose, Info, Warning, Error, Off),
// ignoring case.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	if v, ok := verbosityNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return Info, fmt.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
}

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Off:
		return "Off"
	}
	return fmt.Sprintf("VerbosityLevel(%d)", int(v))
}

// SlogLevel maps the verbosity onto a slog level.
func (v VerbosityLevel) SlogLevel() slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger writing to w. Off discards everything.
func NewLogger(v VerbosityLevel, w io.Writer) *slog.Logger {
	if v == Off {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: v.SlogLevel()}))
}
