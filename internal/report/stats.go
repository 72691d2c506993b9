package report

import "github.com/callmegreg/gh-hulud-users/internal/types"

// Stats summarizes a report
type Stats struct {
	TotalRepositories    int `json:"totalRepositories" yaml:"totalRepositories"`
	UniqueUsers          int `json:"uniqueUsers" yaml:"uniqueUsers"`
	UsersWithMemberships int `json:"usersWithMemberships" yaml:"usersWithMemberships"`
	TotalMemberships     int `json:"totalMemberships" yaml:"totalMemberships"`
}

// CalculateStats computes the summary statistics of results
func CalculateStats(results []types.UserResult) Stats {
	stats := Stats{UniqueUsers: len(results)}
	for _, user := range results {
		stats.TotalRepositories += len(user.Repositories)
		if user.HasMemberships() {
			stats.UsersWithMemberships++
			stats.TotalMemberships += len(user.Memberships)
		}
	}
	return stats
}
