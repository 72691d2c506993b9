package api

import (
	"context"

	"emperror.dev/errors"
	"github.com/pterm/pterm"
	"github.com/shurcooL/githubv4"

	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

const maxPerPage = 100

type enterpriseOrganizationsQuery struct {
	Enterprise struct {
		Organizations struct {
			Nodes []struct {
				Login string
			}
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
		} `graphql:"organizations(first: $first, after: $cursor)"`
	} `graphql:"enterprise(slug: $enterprise)"`
}

// FetchOrganizations fetches all organizations from an enterprise using GraphQL
func (c *Client) FetchOrganizations(ctx context.Context, enterprise string) ([]types.Organization, error) {
	variables := map[string]any{
		"enterprise": githubv4.String(enterprise),
		"first":      githubv4.Int(maxPerPage),
		"cursor":     (*githubv4.String)(nil),
	}

	orgs := []types.Organization{}
	for {
		var query enterpriseOrganizationsQuery
		if err := c.query(ctx, &query, variables); err != nil {
			return nil, &types.DiscoveryError{Operation: "fetch enterprise organizations", Err: err}
		}

		for _, node := range query.Enterprise.Organizations.Nodes {
			orgs = append(orgs, types.Organization{Login: node.Login})
		}

		if !query.Enterprise.Organizations.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(query.Enterprise.Organizations.PageInfo.EndCursor)
	}

	return orgs, nil
}

// GetOrganizations returns organization list either from CSV file or from enterprise API.
// Organizations listed in the CSV file that are not part of the enterprise are skipped.
func (c *Client) GetOrganizations(ctx context.Context, enterprise, orgListPath string) ([]types.Organization, error) {
	pterm.Info.Printf("Fetching organizations for enterprise: %s\n", enterprise)
	enterpriseOrgs, err := c.FetchOrganizations(ctx, enterprise)
	if err != nil {
		return nil, err
	}
	pterm.Success.Printf("Found %d organizations in enterprise '%s'\n", len(enterpriseOrgs), enterprise)

	if orgListPath == "" {
		return enterpriseOrgs, nil
	}

	pterm.Info.Printf("Reading organizations from CSV file: %s\n", orgListPath)
	csvOrgs, err := utils.ReadOrganizationsFromCSV(orgListPath)
	if err != nil {
		return nil, err
	}
	if len(csvOrgs) == 0 {
		return nil, errors.New("no valid organizations found in CSV file")
	}
	pterm.Success.Printf("Found %d organizations in CSV file\n", len(csvOrgs))

	validOrgs, invalidOrgs := FilterOrganizations(enterpriseOrgs, csvOrgs)

	if len(invalidOrgs) > 0 {
		pterm.Warning.Printf("Found %d organizations in CSV that do not exist in enterprise '%s':\n", len(invalidOrgs), enterprise)
		for _, org := range invalidOrgs {
			pterm.Printf("  - %s (not found in enterprise)\n", pterm.Red(org))
		}
		pterm.Println()
	}

	if len(validOrgs) == 0 {
		return nil, errors.Errorf("no valid organizations found in CSV file that exist in enterprise '%s'", enterprise)
	}

	if len(invalidOrgs) > 0 {
		pterm.Info.Printf("Proceeding with %d valid organizations (skipping %d invalid)\n", len(validOrgs), len(invalidOrgs))
	}

	return validOrgs, nil
}

// FilterOrganizations splits the requested logins into those present in the enterprise
// (using the enterprise's casing) and those that are not. Duplicates are dropped.
func FilterOrganizations(enterpriseOrgs []types.Organization, requested []string) (valid []types.Organization, invalid []string) {
	enterpriseOrgMap := make(map[string]types.Organization, len(enterpriseOrgs))
	for _, org := range enterpriseOrgs {
		enterpriseOrgMap[utils.FoldLogin(org.Login)] = org
	}

	seen := make(map[string]bool)
	for _, login := range requested {
		key := utils.FoldLogin(login)
		if seen[key] {
			continue
		}
		seen[key] = true

		if org, ok := enterpriseOrgMap[key]; ok {
			valid = append(valid, org)
		} else {
			invalid = append(invalid, login)
		}
	}
	return valid, invalid
}
