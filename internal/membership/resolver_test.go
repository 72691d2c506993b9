package membership

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

type fakeAPI struct {
	mu            sync.Mutex
	members       map[string][]string
	publicMembers map[string][]string
	collaborators map[string][]string
	memberErr     error
	publicErr     error
	listErr       error
	listCalls     map[string]int
}

func contains(logins []string, username string) bool {
	for _, login := range logins {
		if login == username {
			return true
		}
	}
	return false
}

func (f *fakeAPI) CheckMembership(_ context.Context, org, username string) (bool, error) {
	if f.memberErr != nil {
		return false, f.memberErr
	}
	return contains(f.members[org], username), nil
}

func (f *fakeAPI) CheckPublicMembership(_ context.Context, org, username string) (bool, error) {
	if f.publicErr != nil {
		return false, f.publicErr
	}
	return contains(f.publicMembers[org], username), nil
}

func (f *fakeAPI) ListOutsideCollaborators(_ context.Context, org string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listCalls == nil {
		f.listCalls = map[string]int{}
	}
	f.listCalls[org]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collaborators[org], nil
}

type recordingObserver struct {
	mu          sync.Mutex
	probes      []string
	resolutions []types.MembershipStatus
}

func (o *recordingObserver) ObserveProbe(tier string, outcome ProbeOutcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.probes = append(o.probes, tier+":"+outcome.String())
}

func (o *recordingObserver) ObserveResolution(status types.MembershipStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resolutions = append(o.resolutions, status)
}

func newDefaultResolver(api *fakeAPI, opts ...ResolverOption) *Resolver {
	index := NewCollaboratorIndex(api.ListOutsideCollaborators, 0, 0)
	return NewResolver(DefaultTiers(api, index), opts...)
}

func TestResolverTiers(t *testing.T) {
	errForbidden := errors.New("HTTP 403: Forbidden")

	tests := []struct {
		name     string
		api      *fakeAPI
		username string
		expected types.MembershipStatus
		probes   []string
	}{
		{
			name:     "private membership confirms",
			api:      &fakeAPI{members: map[string][]string{"org1": {"alice"}}},
			username: "alice",
			expected: types.StatusMember,
			probes:   []string{"membership:confirmed"},
		},
		{
			name:     "public membership after private check fails",
			api:      &fakeAPI{memberErr: errForbidden, publicMembers: map[string][]string{"org1": {"alice"}}},
			username: "alice",
			expected: types.StatusMember,
			probes:   []string{"membership:failed", "public-membership:confirmed"},
		},
		{
			name: "outside collaborator after both membership checks fail",
			api: &fakeAPI{
				memberErr:     errForbidden,
				publicErr:     errForbidden,
				collaborators: map[string][]string{"org1": {"bob", "Alice"}},
			},
			username: "alice",
			expected: types.StatusOutsideCollaborator,
			probes:   []string{"membership:failed", "public-membership:failed", "outside-collaborator:confirmed"},
		},
		{
			name: "none when not in the collaborator list",
			api: &fakeAPI{
				memberErr:     errForbidden,
				publicErr:     errForbidden,
				collaborators: map[string][]string{"org1": {"bob"}},
			},
			username: "alice",
			expected: types.StatusNone,
			probes:   []string{"membership:failed", "public-membership:failed", "outside-collaborator:not_applicable"},
		},
		{
			name:     "none when every probe fails",
			api:      &fakeAPI{memberErr: errForbidden, publicErr: errForbidden, listErr: errForbidden},
			username: "alice",
			expected: types.StatusNone,
			probes:   []string{"membership:failed", "public-membership:failed", "outside-collaborator:failed"},
		},
		{
			name:     "none when every probe answers no",
			api:      &fakeAPI{},
			username: "alice",
			expected: types.StatusNone,
			probes:   []string{"membership:not_applicable", "public-membership:not_applicable", "outside-collaborator:not_applicable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer := &recordingObserver{}
			resolver := newDefaultResolver(tt.api, WithObserver(observer))

			status := resolver.Resolve(context.Background(), "org1", tt.username)

			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.probes, observer.probes)
			assert.Equal(t, []types.MembershipStatus{tt.expected}, observer.resolutions)
		})
	}
}

func TestResolverErrorWinsOverOutcome(t *testing.T) {
	resolver := NewResolver([]Tier{
		{
			Name:   "broken",
			Status: types.StatusMember,
			Probe: func(context.Context, string, string) (ProbeOutcome, error) {
				return ProbeConfirmed, errors.New("boom")
			},
		},
	})
	assert.Equal(t, types.StatusNone, resolver.Resolve(context.Background(), "org1", "alice"))
}

func TestResolverWithoutTiers(t *testing.T) {
	assert.Equal(t, types.StatusNone, NewResolver(nil).Resolve(context.Background(), "org1", "alice"))
}

func TestProbeOutcomeString(t *testing.T) {
	assert.Equal(t, "confirmed", ProbeConfirmed.String())
	assert.Equal(t, "not_applicable", ProbeNotApplicable.String())
	assert.Equal(t, "failed", ProbeFailed.String())
	assert.Equal(t, "unknown", ProbeOutcome(42).String())
}
