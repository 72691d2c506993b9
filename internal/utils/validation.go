package utils

import (
	"fmt"
	"slices"
	"strings"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// MaxConcurrency bounds how many users are resolved at once
const MaxConcurrency = 50

// OutputFormats lists the accepted values of the --format flag
var OutputFormats = []string{"table", "json", "yaml"}

// ValidateConcurrency validates the concurrency flag value. Zero means unbounded.
func ValidateConcurrency(concurrency int) error {
	if concurrency < 0 || concurrency > MaxConcurrency {
		return &types.ConfigError{
			Field:  "concurrency",
			Reason: fmt.Sprintf("must be between 0 and %d, got %d", MaxConcurrency, concurrency),
		}
	}
	return nil
}

// ValidateFormat validates the --format flag value
func ValidateFormat(format string) error {
	if !slices.Contains(OutputFormats, format) {
		return &types.ConfigError{
			Field:  "format",
			Reason: fmt.Sprintf("must be one of %s, got %q", strings.Join(OutputFormats, ", "), format),
		}
	}
	return nil
}

// ValidateOrgName checks that an organization name could be a GitHub login
func ValidateOrgName(name string) error {
	if name == "" || strings.ContainsAny(name, " /") {
		return &types.ConfigError{
			Field:  "organization name",
			Reason: fmt.Sprintf("%q is not a valid organization login", name),
		}
	}
	return nil
}
