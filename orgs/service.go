package orgs

import (
	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/pkg/errors"
)

// Repos holds all repository dependencies for the org Service.
type Repos struct {
	Orgs        OrgRepo
	Memberships MembershipRepo
}

// Service implements organization and membership operations. Access checks
// go through the Guard; call sites enumerate the exact roles they accept.
type Service struct {
	repos Repos
	guard *Guard
}

// InviteResult is the outcome of an Invite call. Existing is true when the
// invitee already held a membership; in that case the stored membership is
// returned unchanged (a re-invite never updates the role).
type InviteResult struct {
	Membership *Membership
	Existing   bool
}

// NewService initializes the org Service with required dependencies.
func NewService(repos Repos) (*Service, error) {
	if repos.Orgs == nil {
		return nil, errors.New("[orgs.NewService] Orgs repo is required")
	}
	if repos.Memberships == nil {
		return nil, errors.New("[orgs.NewService] Memberships repo is required")
	}
	guard, err := NewGuard(repos.Memberships)
	if err != nil {
		return nil, err
	}
	return &Service{repos: repos, guard: guard}, nil
}

// Guard exposes the service's access-control guard for org-scoped handlers
// outside this package.
func (s *Service) Guard() *Guard {
	return s.guard
}

// Create inserts the organization and its owner membership. The two inserts
// are independent store calls, not a transaction; the unique membership
// index is the backstop if a concurrent create races on the same pair.
func (s *Service) Create(name, slug, ownerID string) (*Organization, error) {
	org := &Organization{Name: name, Slug: slug, OwnerID: ownerID}
	if _, err := s.repos.Orgs.Insert(org); err != nil {
		return nil, errors.Wrap(err, "[Service.Create] orgs.Insert")
	}

	membership := &Membership{OrgID: org.ID, UserID: ownerID, Role: RoleOwner}
	if _, err := s.repos.Memberships.Insert(membership); err != nil {
		return nil, errors.Wrap(err, "[Service.Create] memberships.Insert")
	}
	return org, nil
}

// Invite adds inviteeID to the org with the given role. Only owners and
// admins may invite. A duplicate invite is idempotent: the existing row is
// returned with Existing set and its role left untouched.
func (s *Service) Invite(orgID, inviterID, inviteeID string, role Role) (*InviteResult, error) {
	if _, err := s.guard.Authorize(orgID, inviterID, RoleOwner, RoleAdmin); err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleMember
	}
	if !role.Valid() {
		return nil, errors.Errorf("[Service.Invite] unknown role %q", role)
	}

	membership := &Membership{OrgID: orgID, UserID: inviteeID, Role: role}
	if _, err := s.repos.Memberships.Insert(membership); err != nil {
		if interrors.Is(err, interrors.ErrAlreadyExists) {
			existing, getErr := s.repos.Memberships.Get(orgID, inviteeID)
			if getErr != nil {
				return nil, errors.Wrap(getErr, "[Service.Invite] memberships.Get after duplicate")
			}
			return &InviteResult{Membership: existing, Existing: true}, nil
		}
		return nil, errors.Wrap(err, "[Service.Invite] memberships.Insert")
	}
	return &InviteResult{Membership: membership}, nil
}

// Members lists the org's memberships. Any member may list; non-members are
// rejected by the guard.
func (s *Service) Members(orgID, callerID string) ([]*Membership, error) {
	if _, err := s.guard.Authorize(orgID, callerID); err != nil {
		return nil, err
	}
	members, err := s.repos.Memberships.ListByOrg(orgID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Members] memberships.ListByOrg")
	}
	return members, nil
}

// ListForUser returns the organizations the user belongs to, resolved
// through their memberships.
func (s *Service) ListForUser(userID string) ([]*Organization, error) {
	memberships, err := s.repos.Memberships.ListByUser(userID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.ListForUser] memberships.ListByUser")
	}
	result := make([]*Organization, 0, len(memberships))
	for _, m := range memberships {
		org, err := s.repos.Orgs.Get(m.OrgID)
		if err != nil {
			if interrors.Is(err, interrors.ErrOrgNotFound) {
				continue // membership outlived its org; skip rather than fail the listing
			}
			return nil, errors.Wrap(err, "[Service.ListForUser] orgs.Get")
		}
		result = append(result, org)
	}
	return result, nil
}

// Get returns a single organization by id.
func (s *Service) Get(orgID string) (*Organization, error) {
	return s.repos.Orgs.Get(orgID)
}
