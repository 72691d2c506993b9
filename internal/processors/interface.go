package processors

import (
	"context"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// OrganizationLister lists the organizations to check
type OrganizationLister interface {
	GetOrganizations(ctx context.Context, enterprise, orgListPath string) ([]types.Organization, error)
}

// RepositorySearcher finds the flagged repositories
type RepositorySearcher interface {
	SearchRepositories(ctx context.Context, query string) ([]types.RepositoryRef, error)
}
