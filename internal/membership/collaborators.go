package membership

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

// ListFunc lists the outside collaborator logins of an organization
type ListFunc func(ctx context.Context, org string) ([]string, error)

type loginSet map[string]struct{}

// CollaboratorIndex caches each organization's outside collaborators so every organization
// is listed at most once while its entry is fresh. Concurrent lookups for the same
// organization share one listing. Failed listings are not cached.
type CollaboratorIndex struct {
	list  ListFunc
	cache *expirable.LRU[string, loginSet]
	group singleflight.Group
}

// NewCollaboratorIndex creates an index holding up to size organizations (0 for no limit)
// for ttl (0 for the lifetime of the index).
func NewCollaboratorIndex(list ListFunc, size int, ttl time.Duration) *CollaboratorIndex {
	return &CollaboratorIndex{
		list:  list,
		cache: expirable.NewLRU[string, loginSet](size, nil, ttl),
	}
}

// Contains reports whether username is an outside collaborator of org, ignoring case
func (i *CollaboratorIndex) Contains(ctx context.Context, org, username string) (bool, error) {
	set, err := i.collaborators(ctx, org)
	if err != nil {
		return false, err
	}
	_, ok := set[utils.FoldLogin(username)]
	return ok, nil
}

func (i *CollaboratorIndex) collaborators(ctx context.Context, org string) (loginSet, error) {
	if set, ok := i.cache.Get(org); ok {
		return set, nil
	}

	v, err, shared := i.group.Do(org, func() (any, error) {
		if set, ok := i.cache.Get(org); ok {
			return set, nil
		}
		logins, err := i.list(ctx, org)
		if err != nil {
			return nil, err
		}
		set := make(loginSet, len(logins))
		for _, login := range logins {
			set[utils.FoldLogin(login)] = struct{}{}
		}
		i.cache.Add(org, set)
		logrus.WithFields(logrus.Fields{
			"org":           org,
			"collaborators": len(set),
		}).Debug("cached outside collaborators")
		return set, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logrus.WithField("org", org).Debug("shared in-flight outside collaborator listing")
	}
	return v.(loginSet), nil
}
