package utils

import (
	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// ValidateConfig validates the settings shared by every command
func ValidateConfig(cfg *types.Config) error {
	if err := ValidateConcurrency(cfg.Concurrency); err != nil {
		return err
	}

	// Validate CSV file early if provided
	if cfg.OrgListPath != "" {
		orgs, err := ReadOrganizationsFromCSV(cfg.OrgListPath)
		if err != nil {
			return &types.ConfigError{Field: "org-list", Reason: err.Error()}
		}
		if len(orgs) == 0 {
			return &types.ConfigError{Field: "org-list", Reason: "CSV file contains no valid organizations"}
		}
	}

	if cfg.Format != "" {
		if err := ValidateFormat(cfg.Format); err != nil {
			return err
		}
	}

	if cfg.Timeout < 0 {
		return &types.ConfigError{Field: "timeout", Reason: "must not be negative"}
	}

	return nil
}

// PrintCompletionHeader prints the completion header with results
func PrintCompletionHeader(operation string, users, usersWithMemberships, memberships int) {
	style := pterm.NewStyle(pterm.BgGreen)
	if usersWithMemberships > 0 {
		style = pterm.NewStyle(pterm.BgRed)
	}
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(style).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Printf("%s Complete! (Users: %d, With Enterprise Memberships: %d, Memberships: %d)", operation, users, usersWithMemberships, memberships)
}
