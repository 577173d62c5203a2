package orgs

// OrgRepo defines the storage operations for organizations.
type OrgRepo interface {
	Insert(org *Organization) (string, error)
	Get(id string) (*Organization, error)
	ListForOwner(ownerID string) ([]*Organization, error)
}

// MembershipRepo defines the storage operations for memberships. The
// (org_id, user_id) pair carries a unique index; Insert surfaces a
// violation as ErrAlreadyExists.
type MembershipRepo interface {
	Insert(membership *Membership) (string, error)
	Get(orgID, userID string) (*Membership, error)
	ListByOrg(orgID string) ([]*Membership, error)
	ListByUser(userID string) ([]*Membership, error)
}
