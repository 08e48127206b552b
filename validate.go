package pap

import (
	"fmt"
	"strings"
)

// Validate checks that the fields required by the source's kind are set.
func (s MascotSource) Validate() error {
	switch s.Kind {
	case MascotPreset:
		if s.Name == "" {
			return fmt.Errorf("preset mascot requires a name: %w", ErrValidation)
		}
		if strings.ContainsAny(s.Name, `/\`) {
			return fmt.Errorf("mascot name %q must not contain path separators: %w", s.Name, ErrValidation)
		}
	case MascotFile:
		if s.Path == "" {
			return fmt.Errorf("file mascot requires a path: %w", ErrValidation)
		}
	default:
		return fmt.Errorf("unknown mascot kind %d: %w", int(s.Kind), ErrValidation)
	}
	return nil
}
