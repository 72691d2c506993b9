// Package membership resolves which organizations of an enterprise a user belongs to.
//
// A Resolver walks an ordered list of probe tiers for one (organization, user) pair and
// stops at the first confirmed signal. Probe failures never escape the resolver; a pair
// whose probes all fail or find nothing resolves to StatusNone.
package membership

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// ProbeOutcome is the tri-state result of one membership probe
type ProbeOutcome int

const (
	// ProbeNotApplicable means the probe ran and found no membership
	ProbeNotApplicable ProbeOutcome = iota
	// ProbeConfirmed means the probe found a membership
	ProbeConfirmed
	// ProbeFailed means the probe could not tell, e.g. missing permissions
	ProbeFailed
)

func (o ProbeOutcome) String() string {
	switch o {
	case ProbeConfirmed:
		return "confirmed"
	case ProbeNotApplicable:
		return "not_applicable"
	case ProbeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProbeFunc checks a single membership signal for a user in an organization
type ProbeFunc func(ctx context.Context, org, username string) (ProbeOutcome, error)

// Tier is one step of the fallback chain. Status is reported when Probe confirms.
type Tier struct {
	Name   string
	Status types.MembershipStatus
	Probe  ProbeFunc
}

// ProbeObserver is notified about every probe run and every final status
type ProbeObserver interface {
	ObserveProbe(tier string, outcome ProbeOutcome)
	ObserveResolution(status types.MembershipStatus)
}

// Resolver determines the membership status of a user in an organization
type Resolver struct {
	tiers    []Tier
	observer ProbeObserver
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithObserver reports probe outcomes to observer
func WithObserver(observer ProbeObserver) ResolverOption {
	return func(r *Resolver) {
		r.observer = observer
	}
}

// NewResolver creates a resolver that tries tiers in order
func NewResolver(tiers []Tier, opts ...ResolverOption) *Resolver {
	r := &Resolver{tiers: tiers}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the status of the first confirming tier, or StatusNone
func (r *Resolver) Resolve(ctx context.Context, org, username string) types.MembershipStatus {
	status := types.StatusNone
	for _, tier := range r.tiers {
		outcome, err := tier.Probe(ctx, org, username)
		if err != nil {
			outcome = ProbeFailed
			logrus.WithFields(logrus.Fields{
				"org":      org,
				"username": username,
				"tier":     tier.Name,
			}).WithError(err).Debug("membership probe failed, falling back")
		}
		if r.observer != nil {
			r.observer.ObserveProbe(tier.Name, outcome)
		}
		if outcome == ProbeConfirmed {
			status = tier.Status
			break
		}
	}

	if r.observer != nil {
		r.observer.ObserveResolution(status)
	}
	return status
}
