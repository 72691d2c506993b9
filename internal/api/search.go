package api

import (
	"context"

	"github.com/google/go-github/v41/github"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// SearchRepositories returns every repository matching query. Repositories without an owner
// are skipped.
func (c *Client) SearchRepositories(ctx context.Context, query string) ([]types.RepositoryRef, error) {
	pterm.Info.Printf("Searching for repositories matching %q...\n", query)

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: maxPerPage},
	}

	results := []types.RepositoryRef{}
	for {
		var page *github.RepositoriesSearchResult
		var res *github.Response
		err := c.do("search repositories", logrus.Fields{"query": query, "page": opts.Page}, func() (*github.Response, error) {
			var err error
			page, res, err = c.rest.Search.Repositories(ctx, query, opts)
			return res, err
		})
		if err != nil {
			return nil, &types.DiscoveryError{Operation: "search for Sha1-Hulud repositories", Err: err}
		}

		for _, repo := range page.Repositories {
			owner := repo.GetOwner()
			if owner.GetLogin() == "" {
				continue
			}
			results = append(results, types.RepositoryRef{
				Owner: owner.GetLogin(),
				Repo:  repo.GetName(),
				URL:   repo.GetHTMLURL(),
			})
		}

		if res.NextPage == 0 {
			break
		}
		opts.Page = res.NextPage
	}

	pterm.Success.Printf("Found %d Sha1-Hulud repositories\n", len(results))
	return results, nil
}
