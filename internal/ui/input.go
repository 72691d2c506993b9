package ui

import (
	"errors"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ErrEnterpriseRequired is returned when no enterprise slug was given and none can be prompted for
var ErrEnterpriseRequired = errors.New("enterprise slug is required (use --enterprise-slug or HULUD_ENTERPRISE_SLUG)")

// GetEnterpriseInput returns the enterprise slug from the flag, or prompts for it when
// stdin is a terminal
func GetEnterpriseInput(enterpriseFlag string) (string, error) {
	if strings.TrimSpace(enterpriseFlag) != "" {
		return strings.TrimSpace(enterpriseFlag), nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", ErrEnterpriseRequired
	}

	enterprise, err := pterm.DefaultInteractiveTextInput.WithDefaultText("").WithMultiLine(false).Show("Enter the enterprise slug (e.g., github)")
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(enterprise) == "" {
		return "", ErrEnterpriseRequired
	}

	return strings.TrimSpace(enterprise), nil
}
