package zippack

import (
	"fmt"
)

// --- Error Types ---

// ValidationError reports invalid input to a packaging or extraction call.
// It is raised synchronously, before any archive or filesystem write happens.
type ValidationError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	if e.Cause != nil {
		return fmt.Sprintf("validation error for %q: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("validation error for %q: %s", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ConfigError reports an Options value that violates the caller contract.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %s: %s", e.Field, e.Reason)
}
