// Package report folds flagged repositories and resolved memberships into the ranked
// per-user report and renders it.
package report

import (
	"sort"

	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

// Aggregate groups repositories by their exact owner string, attaches the owner's
// memberships and ranks owners by membership count (most first), then username.
func Aggregate(repos []types.RepositoryRef, memberships map[string]*types.UserMembership) []types.UserResult {
	var owners []string
	grouped := make(map[string][]types.RepositoryRef)
	for _, repo := range repos {
		if _, ok := grouped[repo.Owner]; !ok {
			owners = append(owners, repo.Owner)
		}
		grouped[repo.Owner] = append(grouped[repo.Owner], repo)
	}

	results := make([]types.UserResult, 0, len(owners))
	for _, owner := range owners {
		result := types.UserResult{
			Username:     owner,
			Repositories: grouped[owner],
			Memberships:  []types.OrgMembership{},
		}
		if membership := memberships[owner]; membership != nil {
			result.Memberships = append(result.Memberships, membership.Organizations...)
		}
		results = append(results, result)
	}

	SortResults(results)
	return results
}

// SortResults orders results by descending membership count, then ascending username
func SortResults(results []types.UserResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if len(a.Memberships) != len(b.Memberships) {
			return len(a.Memberships) > len(b.Memberships)
		}
		return a.Username < b.Username
	})
}

// CaseVariantOwners returns, for every owner login seen under more than one spelling,
// all of its spellings in encounter order. Such owners produce separate report rows, and
// only the spelling present in the membership map carries memberships.
func CaseVariantOwners(repos []types.RepositoryRef) [][]string {
	var keys []string
	spellings := make(map[string][]string)
	for _, repo := range repos {
		key := utils.FoldLogin(repo.Owner)
		known, ok := spellings[key]
		if !ok {
			keys = append(keys, key)
		}
		seen := false
		for _, spelling := range known {
			if spelling == repo.Owner {
				seen = true
				break
			}
		}
		if !seen {
			spellings[key] = append(known, repo.Owner)
		}
	}

	var variants [][]string
	for _, key := range keys {
		if len(spellings[key]) > 1 {
			variants = append(variants, spellings[key])
		}
	}
	return variants
}
