package processors

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-hulud-users/internal/membership"
	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// MembershipProcessor resolves memberships for many users with a progress bar
type MembershipProcessor struct {
	resolver    membership.StatusResolver
	concurrency int
	progressBar *pterm.ProgressbarPrinter
}

// NewMembershipProcessor creates a processor. Concurrency bounds the number of users
// resolved at once; zero means unbounded.
func NewMembershipProcessor(resolver membership.StatusResolver, concurrency int) *MembershipProcessor {
	return &MembershipProcessor{
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// Process resolves every distinct username against every organization
func (mp *MembershipProcessor) Process(ctx context.Context, orgs []types.Organization, usernames []string) map[string]*types.UserMembership {
	totalUsers := len(membership.UniqueUsernames(usernames))
	if totalUsers == 0 {
		return map[string]*types.UserMembership{}
	}

	pterm.Info.Printf("Checking memberships for %d users across %d organizations...\n", totalUsers, len(orgs))

	progressBar, _ := pterm.DefaultProgressbar.WithTotal(totalUsers).WithTitle("Checking memberships").Start()
	mp.progressBar = progressBar

	coordinator := membership.NewCoordinator(mp.resolver,
		membership.WithConcurrency(mp.concurrency),
		membership.WithProgress(mp.userCompleted),
	)
	result := coordinator.CheckMemberships(ctx, orgs, usernames)

	if progressBar != nil {
		_, _ = progressBar.Stop()
	}
	pterm.Success.Printf("Completed membership checks for %d users\n", len(result))
	return result
}

// userCompleted is called serially by the coordinator
func (mp *MembershipProcessor) userCompleted(m *types.UserMembership) {
	if len(m.Organizations) > 0 {
		pterm.Warning.Printf("User '%s' belongs to %d organization(s) in the enterprise\n", m.Username, len(m.Organizations))
	}
	if mp.progressBar == nil {
		return
	}
	mp.progressBar.UpdateTitle(fmt.Sprintf("Checked %s", m.Username))
	mp.progressBar.Increment()
}
