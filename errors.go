package pap

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownMascot indicates no preset or mascot file matches a name.
	ErrUnknownMascot = errors.New("unknown mascot")

	// ErrInvalidUTF8 indicates input bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

	// ErrUnknownShell indicates a completion script was requested for an
	// unsupported shell.
	ErrUnknownShell = errors.New("unknown shell")
)
