package sessions_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/sessions"
	"github.com/jrsteele09/go-saas-server/sessions/docrepo"
	"github.com/jrsteele09/go-saas-server/store"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *sessions.Manager {
	t.Helper()

	repo := docrepo.New(store.NewMemStore(map[string][][]string{
		docrepo.Collection: docrepo.Indexes,
	}))
	m, err := sessions.NewManager(repo, sessions.DefaultTokenLength)
	require.NoError(t, err)
	return m
}

func TestNewManager_RequiresRepo(t *testing.T) {
	_, err := sessions.NewManager(nil, 0)
	require.Error(t, err)
}

func TestManager_IssueProducesDistinctResolvableTokens(t *testing.T) {
	m := newManager(t)

	token1, err := m.Issue("user-1")
	require.NoError(t, err)
	token2, err := m.Issue("user-1")
	require.NoError(t, err)

	require.NotEqual(t, token1, token2, "each issue must mint a fresh token")

	userID, err := m.Resolve("Bearer " + token1)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	userID, err = m.Resolve("Bearer " + token2)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestManager_ResolveAcceptsBareToken(t *testing.T) {
	m := newManager(t)

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	userID, err := m.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestManager_ResolveFailures(t *testing.T) {
	m := newManager(t)

	t.Run("unknown token", func(t *testing.T) {
		_, err := m.Resolve("Bearer definitely-not-issued")
		require.ErrorIs(t, err, errors.ErrInvalidToken)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := m.Resolve("")
		require.ErrorIs(t, err, errors.ErrMissingToken)
	})

	t.Run("bearer prefix with no token", func(t *testing.T) {
		_, err := m.Resolve("Bearer ")
		require.ErrorIs(t, err, errors.ErrMissingToken)
	})
}

func TestManager_SessionRecordsCreation(t *testing.T) {
	memStore := store.NewMemStore(map[string][][]string{
		docrepo.Collection: docrepo.Indexes,
	})
	repo := docrepo.New(memStore)

	fixed := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	m, err := sessions.NewManager(repo, 0, sessions.WithNowTime(func() time.Time { return fixed }))
	require.NoError(t, err)

	token, err := m.Issue("user-42")
	require.NoError(t, err)

	session, err := repo.GetByToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", session.UserID)
	require.Equal(t, fixed, session.CreatedAt)
	require.NotEmpty(t, session.ID)
}
