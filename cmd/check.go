package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-hulud-users/internal/membership"
	"github.com/callmegreg/gh-hulud-users/internal/metrics"
	"github.com/callmegreg/gh-hulud-users/internal/ui"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check <username>...",
	Short: "Check the enterprise memberships of specific users",
	Long:  "Check whether the given users are members or outside collaborators of the enterprise organizations, without searching for repositories.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).WithTextStyle(pterm.NewStyle(pterm.FgWhite)).Println("Enterprise Membership Check")
	pterm.Println()

	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	orgs, err := client.GetOrganizations(cmd.Context(), cfg.Enterprise, cfg.OrgListPath)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		ui.ShowNoOrganizationsWarning(cfg.OrgListPath)
		return nil
	}

	usernames := membership.UniqueUsernames(args)
	ui.ShowProcessingStart(len(usernames), len(orgs), cfg.Concurrency)

	recorder := metrics.NewRecorder()
	memberships := newMembershipProcessor(cfg, client, recorder).Process(cmd.Context(), orgs, usernames)

	pterm.Println()
	ui.ShowUserMemberships(usernames, memberships)

	if err := writeMetrics(cfg, recorder); err != nil {
		return err
	}

	withMemberships, total := 0, 0
	for _, m := range memberships {
		if len(m.Organizations) > 0 {
			withMemberships++
			total += len(m.Organizations)
		}
	}
	utils.PrintCompletionHeader("Membership Check", len(memberships), withMemberships, total)

	utils.ShowReplicationCommand(utils.BuildReplicationCommand("check "+strings.Join(usernames, " "), replicationFlags(cfg)))
	return nil
}
