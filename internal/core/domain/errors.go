package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrEmptyToolPath is returned when a command is built without a build tool path.
	ErrEmptyToolPath = zerr.New("build tool path is empty")

	// ErrEmptyCommandVerb is returned when a command is built without a command verb.
	ErrEmptyCommandVerb = zerr.New("command verb is empty")

	// ErrUnknownExecutionMode is returned when an execution mode string cannot be parsed.
	ErrUnknownExecutionMode = zerr.New("unknown execution mode, expected 'run' or 'debug'")

	// ErrInvalidKindClass is returned when a kind class string cannot be parsed.
	ErrInvalidKindClass = zerr.New("invalid kind class, expected 'test', 'binary' or 'none'")

	// ErrToolNotFound is returned when the build tool executable cannot be located.
	ErrToolNotFound = zerr.New("build tool not configured")

	// ErrNoTargetsSpecified is returned when no target labels are given.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileLoadFailed is returned when a .env file exists but cannot be parsed.
	ErrEnvFileLoadFailed = zerr.New("failed to load env file")

	// ErrTargetResolutionFailed is returned when a resolver fails for reasons
	// other than an unknown kind.
	ErrTargetResolutionFailed = zerr.New("failed to resolve target")

	// ErrFlagSourceFailed is returned when a flag provider fails.
	ErrFlagSourceFailed = zerr.New("failed to collect build flags")
)

// IsConfigurationError reports whether err means the invocation is missing a
// required input (tool path or command verb). The condition is not transient.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrEmptyToolPath) ||
		errors.Is(err, ErrEmptyCommandVerb) ||
		errors.Is(err, ErrToolNotFound)
}
