package orgs_test

import (
	"testing"

	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/orgs"
	"github.com/jrsteele09/go-saas-server/orgs/docrepo"
	"github.com/jrsteele09/go-saas-server/store"
	"github.com/stretchr/testify/require"
)

const (
	testOwnerID    = "user-owner"
	testAdminID    = "user-admin"
	testMemberID   = "user-member"
	testOutsiderID = "user-outsider"
)

type testFixture struct {
	memberships orgs.MembershipRepo
	service     *orgs.Service
	guard       *orgs.Guard
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	memStore := store.NewMemStore(map[string][][]string{
		docrepo.MembershipCollection: docrepo.MembershipIndexes,
	})
	membershipRepo := docrepo.NewMembershipRepo(memStore)
	service, err := orgs.NewService(orgs.Repos{
		Orgs:        docrepo.NewOrgRepo(memStore),
		Memberships: membershipRepo,
	})
	require.NoError(t, err)

	return &testFixture{
		memberships: membershipRepo,
		service:     service,
		guard:       service.Guard(),
	}
}

// createTestOrg creates an org owned by testOwnerID with an admin and a
// plain member already invited.
func (f *testFixture) createTestOrg(t *testing.T) *orgs.Organization {
	t.Helper()

	org, err := f.service.Create("Acme", "acme", testOwnerID)
	require.NoError(t, err)

	_, err = f.service.Invite(org.ID, testOwnerID, testAdminID, orgs.RoleAdmin)
	require.NoError(t, err)
	_, err = f.service.Invite(org.ID, testOwnerID, testMemberID, orgs.RoleMember)
	require.NoError(t, err)
	return org
}

func TestService_CreateAssignsOwnerMembership(t *testing.T) {
	f := setupTestFixture(t)

	org, err := f.service.Create("Acme", "acme", testOwnerID)
	require.NoError(t, err)
	require.NotEmpty(t, org.ID)

	membership, err := f.memberships.Get(org.ID, testOwnerID)
	require.NoError(t, err)
	require.Equal(t, orgs.RoleOwner, membership.Role)
}

func TestGuard_Authorize(t *testing.T) {
	f := setupTestFixture(t)
	org := f.createTestOrg(t)

	t.Run("empty required set admits any member", func(t *testing.T) {
		for _, userID := range []string{testOwnerID, testAdminID, testMemberID} {
			membership, err := f.guard.Authorize(org.ID, userID)
			require.NoError(t, err)
			require.Equal(t, userID, membership.UserID)
		}
	})

	t.Run("non-member is rejected regardless of required set", func(t *testing.T) {
		_, err := f.guard.Authorize(org.ID, testOutsiderID)
		require.ErrorIs(t, err, errors.ErrNotMember)

		_, err = f.guard.Authorize(org.ID, testOutsiderID, orgs.RoleOwner)
		require.ErrorIs(t, err, errors.ErrNotMember)
	})

	t.Run("role set admits listed roles only", func(t *testing.T) {
		_, err := f.guard.Authorize(org.ID, testOwnerID, orgs.RoleOwner, orgs.RoleAdmin)
		require.NoError(t, err)

		_, err = f.guard.Authorize(org.ID, testAdminID, orgs.RoleOwner, orgs.RoleAdmin)
		require.NoError(t, err)

		_, err = f.guard.Authorize(org.ID, testMemberID, orgs.RoleOwner, orgs.RoleAdmin)
		require.ErrorIs(t, err, errors.ErrInsufficientRole)
	})

	t.Run("set membership is not a hierarchy", func(t *testing.T) {
		// Owner does not satisfy an admin-only check.
		_, err := f.guard.Authorize(org.ID, testOwnerID, orgs.RoleAdmin)
		require.ErrorIs(t, err, errors.ErrInsufficientRole)
	})
}

func TestService_Invite(t *testing.T) {
	f := setupTestFixture(t)
	org := f.createTestOrg(t)

	t.Run("owner invites a new member", func(t *testing.T) {
		result, err := f.service.Invite(org.ID, testOwnerID, "user-new", orgs.RoleMember)
		require.NoError(t, err)
		require.False(t, result.Existing)
		require.Equal(t, orgs.RoleMember, result.Membership.Role)
	})

	t.Run("admin may invite", func(t *testing.T) {
		result, err := f.service.Invite(org.ID, testAdminID, "user-new-2", orgs.RoleMember)
		require.NoError(t, err)
		require.False(t, result.Existing)
	})

	t.Run("member may not invite", func(t *testing.T) {
		_, err := f.service.Invite(org.ID, testMemberID, "user-new-3", orgs.RoleMember)
		require.ErrorIs(t, err, errors.ErrInsufficientRole)
	})

	t.Run("non-member may not invite", func(t *testing.T) {
		_, err := f.service.Invite(org.ID, testOutsiderID, "user-new-4", orgs.RoleMember)
		require.ErrorIs(t, err, errors.ErrNotMember)
	})

	t.Run("re-invite is idempotent and never updates the role", func(t *testing.T) {
		result, err := f.service.Invite(org.ID, testOwnerID, testMemberID, orgs.RoleAdmin)
		require.NoError(t, err)
		require.True(t, result.Existing)
		require.Equal(t, orgs.RoleMember, result.Membership.Role, "stored role must be unchanged")

		members, err := f.service.Members(org.ID, testOwnerID)
		require.NoError(t, err)
		count := 0
		for _, m := range members {
			if m.UserID == testMemberID {
				count++
			}
		}
		require.Equal(t, 1, count, "no duplicate membership row")
	})

	t.Run("defaults to member role", func(t *testing.T) {
		result, err := f.service.Invite(org.ID, testOwnerID, "user-default-role", "")
		require.NoError(t, err)
		require.Equal(t, orgs.RoleMember, result.Membership.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := f.service.Invite(org.ID, testOwnerID, "user-bad-role", "superuser")
		require.Error(t, err)
	})
}

func TestService_Members(t *testing.T) {
	f := setupTestFixture(t)
	org := f.createTestOrg(t)

	t.Run("any member may list", func(t *testing.T) {
		members, err := f.service.Members(org.ID, testMemberID)
		require.NoError(t, err)
		require.Len(t, members, 3)
	})

	t.Run("non-member gets not-a-member", func(t *testing.T) {
		_, err := f.service.Members(org.ID, testOutsiderID)
		require.ErrorIs(t, err, errors.ErrNotMember)
	})
}

func TestService_ListForUser(t *testing.T) {
	f := setupTestFixture(t)
	org := f.createTestOrg(t)

	second, err := f.service.Create("Beta", "beta", testMemberID)
	require.NoError(t, err)

	memberOrgs, err := f.service.ListForUser(testMemberID)
	require.NoError(t, err)
	require.Len(t, memberOrgs, 2)

	ids := []string{memberOrgs[0].ID, memberOrgs[1].ID}
	require.Contains(t, ids, org.ID)
	require.Contains(t, ids, second.ID)

	outsiderOrgs, err := f.service.ListForUser(testOutsiderID)
	require.NoError(t, err)
	require.Empty(t, outsiderOrgs)
}
