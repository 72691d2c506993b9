package membership

import (
	"context"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// Tier names, also used as metric labels
const (
	TierMembership          = "membership"
	TierPublicMembership    = "public-membership"
	TierOutsideCollaborator = "outside-collaborator"
)

// API is the subset of the GitHub client the default tiers need
type API interface {
	CheckMembership(ctx context.Context, org, username string) (bool, error)
	CheckPublicMembership(ctx context.Context, org, username string) (bool, error)
	ListOutsideCollaborators(ctx context.Context, org string) ([]string, error)
}

// DefaultTiers returns the membership check, the public membership check and the outside
// collaborator lookup, in that order. Outside collaborators are read through index.
func DefaultTiers(api API, index *CollaboratorIndex) []Tier {
	return []Tier{
		{
			Name:   TierMembership,
			Status: types.StatusMember,
			Probe:  BoolProbe(api.CheckMembership),
		},
		{
			Name:   TierPublicMembership,
			Status: types.StatusMember,
			Probe:  BoolProbe(api.CheckPublicMembership),
		},
		{
			Name:   TierOutsideCollaborator,
			Status: types.StatusOutsideCollaborator,
			Probe:  BoolProbe(index.Contains),
		},
	}
}

// BoolProbe adapts a yes/no check into a ProbeFunc
func BoolProbe(check func(ctx context.Context, org, username string) (bool, error)) ProbeFunc {
	return func(ctx context.Context, org, username string) (ProbeOutcome, error) {
		ok, err := check(ctx, org, username)
		switch {
		case err != nil:
			return ProbeFailed, err
		case ok:
			return ProbeConfirmed, nil
		default:
			return ProbeNotApplicable, nil
		}
	}
}
