package processors

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-hulud-users/internal/report"
	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// ScanProcessor runs the whole scan: organizations, repository search, memberships and
// aggregation
type ScanProcessor struct {
	Organizations OrganizationLister
	Repositories  RepositorySearcher
	Memberships   *MembershipProcessor

	Enterprise  string
	OrgListPath string
	Query       string
}

// ScanResult holds everything a scan produced
type ScanResult struct {
	Organizations []types.Organization
	Repositories  []types.RepositoryRef
	Users         []types.UserResult
	Stats         report.Stats
	// CaseVariants lists owners seen under more than one spelling
	CaseVariants [][]string
}

// Process executes the scan. Only organization listing and repository search failures
// are returned.
func (sp *ScanProcessor) Process(ctx context.Context) (*ScanResult, error) {
	orgs, err := sp.Organizations.GetOrganizations(ctx, sp.Enterprise, sp.OrgListPath)
	if err != nil {
		return nil, err
	}

	repos, err := sp.Repositories.SearchRepositories(ctx, sp.Query)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		Organizations: orgs,
		Repositories:  repos,
		CaseVariants:  report.CaseVariantOwners(repos),
	}

	if len(repos) == 0 {
		pterm.Info.Println("No Sha1-Hulud repositories found, skipping membership checks")
		result.Users = []types.UserResult{}
		result.Stats = report.CalculateStats(result.Users)
		return result, nil
	}

	memberships := sp.Memberships.Process(ctx, orgs, types.RepositoryOwners(repos))
	result.Users = report.Aggregate(repos, memberships)
	result.Stats = report.CalculateStats(result.Users)
	return result, nil
}
