package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-hulud-users/internal/report"
	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List Sha1-Hulud repositories without checking memberships",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("query", types.DefaultSearchQuery, "Repository search query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Searching for Sha1-Hulud repositories...")
	repos, err := client.SearchRepositories(cmd.Context(), cfg.Query)
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return err
	}
	if spinner != nil {
		spinner.Success("Search complete")
	}

	ui.ShowCaseVariantWarning(report.CaseVariantOwners(repos))
	return ui.ShowRepositories(repos)
}
