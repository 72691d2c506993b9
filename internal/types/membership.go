package types

// MembershipStatus classifies a user's relationship to an organization
type MembershipStatus string

const (
	StatusMember              MembershipStatus = "member"
	StatusOutsideCollaborator MembershipStatus = "outside_collaborator"
	StatusNone                MembershipStatus = "none"
)

// OrgMembership is a positive membership finding for one organization
type OrgMembership struct {
	Org  string           `json:"org" yaml:"org"`
	Type MembershipStatus `json:"type" yaml:"type"`
}

// UserMembership holds every positive finding for one user.
// Organizations follow the order of the organization list that was checked and never
// contain StatusNone.
type UserMembership struct {
	Username      string
	Organizations []OrgMembership
}

// Status returns the user's status in org, StatusNone when nothing was found
func (m *UserMembership) Status(org string) MembershipStatus {
	if m == nil {
		return StatusNone
	}
	for _, membership := range m.Organizations {
		if membership.Org == org {
			return membership.Type
		}
	}
	return StatusNone
}

// UserResult is one row of the final report
type UserResult struct {
	Username     string          `json:"username" yaml:"username"`
	Repositories []RepositoryRef `json:"repositories" yaml:"repositories"`
	Memberships  []OrgMembership `json:"memberships" yaml:"memberships"`
}

// HasMemberships reports whether the user belongs to at least one organization
func (r UserResult) HasMemberships() bool {
	return len(r.Memberships) > 0
}
