package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name     string
		results  []types.UserResult
		expected Stats
	}{
		{
			name:     "empty results",
			expected: Stats{},
		},
		{
			name: "mixed users",
			results: []types.UserResult{
				{
					Username:     "user1",
					Repositories: []types.RepositoryRef{repo("user1", "repo1"), repo("user1", "repo2")},
					Memberships:  []types.OrgMembership{member("org1")},
				},
				{
					Username:     "user2",
					Repositories: []types.RepositoryRef{repo("user2", "repo3")},
				},
			},
			expected: Stats{TotalRepositories: 3, UniqueUsers: 2, UsersWithMemberships: 1, TotalMemberships: 1},
		},
		{
			name: "multiple memberships per user",
			results: []types.UserResult{
				{
					Username:     "user1",
					Repositories: []types.RepositoryRef{repo("user1", "repo1")},
					Memberships:  []types.OrgMembership{member("org1"), collaborator("org2")},
				},
			},
			expected: Stats{TotalRepositories: 1, UniqueUsers: 1, UsersWithMemberships: 1, TotalMemberships: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateStats(tt.results))
		})
	}
}
