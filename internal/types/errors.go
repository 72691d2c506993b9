package types

import "fmt"

// DiscoveryError represents a failure to list organizations or search repositories.
// It aborts the whole scan.
type DiscoveryError struct {
	Operation string
	Err       error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
