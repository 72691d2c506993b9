package membership

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

// StatusResolver resolves one (organization, user) pair and never fails
type StatusResolver interface {
	Resolve(ctx context.Context, org, username string) types.MembershipStatus
}

// ProgressFunc is called once per user after all of the user's organizations resolved.
// Calls are serialized.
type ProgressFunc func(membership *types.UserMembership)

// Coordinator resolves memberships for many users across many organizations
type Coordinator struct {
	resolver    StatusResolver
	concurrency int
	progress    ProgressFunc
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithConcurrency bounds how many users are resolved at once. Zero means unbounded.
// Each user still checks all organizations concurrently.
func WithConcurrency(concurrency int) CoordinatorOption {
	return func(c *Coordinator) {
		c.concurrency = concurrency
	}
}

// WithProgress registers a callback for completed users
func WithProgress(progress ProgressFunc) CoordinatorOption {
	return func(c *Coordinator) {
		c.progress = progress
	}
}

// NewCoordinator creates a coordinator backed by resolver
func NewCoordinator(resolver StatusResolver, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{resolver: resolver}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckMemberships resolves every distinct user against every organization.
// Usernames are deduplicated ignoring case and keyed by their first-seen spelling.
// Every distinct user is present in the result, with no organizations when nothing was found.
func (c *Coordinator) CheckMemberships(ctx context.Context, orgs []types.Organization, usernames []string) map[string]*types.UserMembership {
	unique := UniqueUsernames(usernames)
	result := make(map[string]*types.UserMembership, len(unique))
	if len(unique) == 0 {
		return result
	}

	logrus.WithFields(logrus.Fields{
		"users":         len(unique),
		"organizations": len(orgs),
		"concurrency":   c.concurrency,
	}).Debug("checking memberships")

	var mu sync.Mutex
	var users errgroup.Group
	if c.concurrency > 0 {
		users.SetLimit(c.concurrency)
	}

	for _, username := range unique {
		users.Go(func() error {
			membership := c.resolveUser(ctx, orgs, username)

			mu.Lock()
			defer mu.Unlock()
			result[username] = membership
			if c.progress != nil {
				c.progress(membership)
			}
			return nil
		})
	}
	_ = users.Wait()

	return result
}

// resolveUser checks every organization concurrently. Each goroutine writes only its own
// slot, and the membership is assembled after all of them finished.
func (c *Coordinator) resolveUser(ctx context.Context, orgs []types.Organization, username string) *types.UserMembership {
	statuses := make([]types.MembershipStatus, len(orgs))

	var group errgroup.Group
	for i, org := range orgs {
		group.Go(func() error {
			statuses[i] = c.resolver.Resolve(ctx, org.Login, username)
			return nil
		})
	}
	_ = group.Wait()

	membership := &types.UserMembership{
		Username:      username,
		Organizations: []types.OrgMembership{},
	}
	for i, status := range statuses {
		if status == types.StatusNone || status == "" {
			continue
		}
		membership.Organizations = append(membership.Organizations, types.OrgMembership{
			Org:  orgs[i].Login,
			Type: status,
		})
	}
	return membership
}

// UniqueUsernames drops case-insensitive duplicates, keeping the first spelling and order
func UniqueUsernames(usernames []string) []string {
	seen := make(map[string]string, len(usernames))
	unique := make([]string, 0, len(usernames))
	for _, username := range usernames {
		key := utils.FoldLogin(username)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = username
		unique = append(unique, username)
	}
	return unique
}
