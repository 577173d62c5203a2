package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/pkg/errors"
)

// DefaultTokenLength is the number of random bytes behind each bearer
// token. 32 bytes = 256 bits of entropy.
const DefaultTokenLength = 32

const bearerPrefix = "Bearer "

// Session binds an opaque bearer token to an account. Sessions are valid
// until deleted; there is no expiry or revocation in this design, and an
// account may hold any number of concurrent sessions.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
}

// Manager issues bearer tokens and resolves them back to account ids.
type Manager struct {
	repo        Repo
	tokenLength int
	nowTime     func() time.Time // injectable for testing
}

// ManagerOption modifies a Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager creates a session Manager. A non-positive tokenLength falls
// back to DefaultTokenLength.
func NewManager(repo Repo, tokenLength int, options ...ManagerOption) (*Manager, error) {
	if repo == nil {
		return nil, errors.New("[NewManager] session repo is required")
	}
	if tokenLength <= 0 {
		tokenLength = DefaultTokenLength
	}
	m := &Manager{repo: repo, tokenLength: tokenLength, nowTime: time.Now}
	for _, opt := range options {
		opt(m)
	}
	return m, nil
}

// Issue mints an unguessable token for the given account and persists the
// session record. The raw token is returned to the caller for the response
// body and is never logged or stored anywhere else.
func (m *Manager) Issue(userID string) (string, error) {
	bytes := make([]byte, m.tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "[Manager.Issue] rand.Read")
	}
	token := base64.RawURLEncoding.EncodeToString(bytes)

	session := &Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: m.nowTime(),
	}
	if err := m.repo.Insert(session); err != nil {
		return "", errors.Wrap(err, "[Manager.Issue] repo.Insert")
	}
	return token, nil
}

// Resolve maps a raw Authorization header value back to the account id that
// owns the session. A "Bearer " prefix is stripped when present; a missing
// or empty token is never silently accepted. Resolution is read-only.
func (m *Manager) Resolve(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", interrors.ErrMissingToken
	}
	token := strings.TrimPrefix(authorizationHeader, bearerPrefix)
	token = strings.TrimSpace(token)
	if token == "" {
		return "", interrors.ErrMissingToken
	}

	session, err := m.repo.GetByToken(token)
	if err != nil {
		if interrors.Is(err, interrors.ErrNotFound) {
			return "", interrors.ErrInvalidToken
		}
		return "", errors.Wrap(err, "[Manager.Resolve] repo.GetByToken")
	}
	return session.UserID, nil
}
