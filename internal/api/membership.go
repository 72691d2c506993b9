package api

import (
	"context"

	"github.com/google/go-github/v41/github"
	"github.com/sirupsen/logrus"
)

// CheckMembership reports whether username is a member of org as seen by the token.
// A 404 means "not a member"; any other failure is returned.
func (c *Client) CheckMembership(ctx context.Context, org, username string) (bool, error) {
	return c.probe("check membership", org, username, func() (bool, *github.Response, error) {
		return c.rest.Organizations.IsMember(ctx, org, username)
	})
}

// CheckPublicMembership reports whether username publicly shows membership of org
func (c *Client) CheckPublicMembership(ctx context.Context, org, username string) (bool, error) {
	return c.probe("check public membership", org, username, func() (bool, *github.Response, error) {
		return c.rest.Organizations.IsPublicMember(ctx, org, username)
	})
}

// ListOutsideCollaborators returns the logins of every outside collaborator of org
func (c *Client) ListOutsideCollaborators(ctx context.Context, org string) ([]string, error) {
	opts := &github.ListOutsideCollaboratorsOptions{
		ListOptions: github.ListOptions{PerPage: maxPerPage},
	}

	var logins []string
	for {
		var users []*github.User
		var res *github.Response
		err := c.do("list outside collaborators", logrus.Fields{"org": org, "page": opts.Page}, func() (*github.Response, error) {
			var err error
			users, res, err = c.rest.Organizations.ListOutsideCollaborators(ctx, org, opts)
			return res, err
		})
		if err != nil {
			return nil, err
		}

		for _, user := range users {
			logins = append(logins, user.GetLogin())
		}

		if res.NextPage == 0 {
			break
		}
		opts.Page = res.NextPage
	}
	return logins, nil
}

func (c *Client) probe(operation, org, username string, check func() (bool, *github.Response, error)) (bool, error) {
	var ok bool
	err := c.do(operation, logrus.Fields{"org": org, "username": username}, func() (*github.Response, error) {
		var res *github.Response
		var err error
		ok, res, err = check()
		return res, err
	})
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}
