package orgs

// Role represents a member's role within an organization.
type Role string

const (
	RoleOwner  Role = "owner"  // Org creator; full control
	RoleAdmin  Role = "admin"  // Can manage members
	RoleMember Role = "member" // Regular member
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Organization is a tenant of the platform.
type Organization struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Slug    string `json:"slug,omitempty"`
	OwnerID string `json:"owner_id"`
}

// Membership binds one account to one organization with exactly one role.
// At most one membership exists per (org, user) pair.
type Membership struct {
	ID     string `json:"_id"`
	OrgID  string `json:"org_id"`
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
