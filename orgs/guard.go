package orgs

import (
	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/pkg/errors"
)

// Guard answers "may this authenticated user act within this org?". Every
// check performs a fresh membership read; nothing is cached in-process.
type Guard struct {
	memberships MembershipRepo
}

// NewGuard creates an access-control guard over the membership repo.
func NewGuard(memberships MembershipRepo) (*Guard, error) {
	if memberships == nil {
		return nil, errors.New("[NewGuard] membership repo is required")
	}
	return &Guard{memberships: memberships}, nil
}

// Authorize confirms the user's membership in the org and, when required is
// non-empty, that the membership's role is one of the required roles.
//
// Required roles are checked by set membership, never by hierarchy: owner
// does not satisfy a check for admin unless the call site lists owner
// explicitly. An empty required set means any member is sufficient.
func (g *Guard) Authorize(orgID, userID string, required ...Role) (*Membership, error) {
	membership, err := g.memberships.Get(orgID, userID)
	if err != nil {
		if interrors.Is(err, interrors.ErrNotFound) {
			return nil, interrors.ErrNotMember
		}
		return nil, errors.Wrap(err, "[Guard.Authorize] memberships.Get")
	}

	if len(required) == 0 {
		return membership, nil
	}
	for _, role := range required {
		if membership.Role == role {
			return membership, nil
		}
	}
	return nil, interrors.ErrInsufficientRole
}
