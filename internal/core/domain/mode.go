package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ExecutionMode is how the target should be launched.
type ExecutionMode int

const (
	// ModeRun launches the target normally.
	ModeRun ExecutionMode = iota
	// ModeDebug launches the target with a debugger listening on DebugPort.
	ModeDebug
)

// String returns "run" or "debug".
func (m ExecutionMode) String() string {
	if m == ModeDebug {
		return "debug"
	}
	return "run"
}

// ParseExecutionMode converts "run" or "debug" (any case) to an ExecutionMode.
func ParseExecutionMode(s string) (ExecutionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "run":
		return ModeRun, nil
	case "debug":
		return ModeDebug, nil
	default:
		return ModeRun, zerr.With(zerr.Wrap(ErrUnknownExecutionMode, "invalid execution mode"), "mode", s)
	}
}
