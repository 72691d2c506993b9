package utils

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// BuildReplicationCommand creates a command string that can be used to replicate the same run
func BuildReplicationCommand(command string, flags map[string]interface{}) string {
	var parts []string
	parts = append(parts, "gh hulud-users", command)

	// Add flags in a consistent order
	flagOrder := []string{
		"enterprise-slug",
		"github-enterprise-server-url",
		"org-list",
		"query",
		"csv",
		"summary",
		"format",
		"metrics-file",
		"concurrency",
		"debug",
	}

	for _, flagName := range flagOrder {
		value, exists := flags[flagName]
		if !exists || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				parts = append(parts, fmt.Sprintf("%s %s", flagPrefix(flagName), quoteIfNeeded(v)))
			}
		case bool:
			if v {
				parts = append(parts, flagPrefix(flagName))
			}
		case int:
			// Zero concurrency is the default (unbounded)
			if v > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", flagPrefix(flagName), v))
			}
		}
	}

	return strings.Join(parts, " ")
}

func flagPrefix(flagName string) string {
	if shortFlag := getShortFlag(flagName); shortFlag != "" {
		return "-" + shortFlag
	}
	return "--" + flagName
}

// getShortFlag returns the short version of a flag if it exists
func getShortFlag(flagName string) string {
	shortFlags := map[string]string{
		"enterprise-slug":              "e",
		"github-enterprise-server-url": "u",
		"org-list":                     "l",
		"concurrency":                  "c",
		"format":                       "f",
	}
	return shortFlags[flagName]
}

// quoteIfNeeded adds quotes around a string if it contains spaces
func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// ShowReplicationCommand displays the replication command to the user
func ShowReplicationCommand(command string) {
	pterm.Println()
	pterm.Info.Println("To replicate this scan, use the following command:")
	pterm.Println()

	boxedCommand := pterm.DefaultBox.
		WithTitle("Replication Command").
		WithTitleTopCenter().
		WithRightPadding(2).
		WithLeftPadding(2).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(command)

	pterm.Println(boxedCommand)
}
