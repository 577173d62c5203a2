package auth

import (
	"github.com/jrsteele09/go-saas-server/accounts"
	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/sessions"
	"github.com/pkg/errors"
)

// Service exposes the authentication entry points the HTTP layer calls
// into: signup, login, and bearer-token resolution. Authorization for
// org-scoped actions lives in the orgs Guard; this service only
// establishes identity.
type Service struct {
	accounts accounts.Repo
	sessions *sessions.Manager
	hasher   accounts.Hasher
}

// Result is returned from Signup and Login: a fresh bearer token plus the
// redacted account view. The credential fields never appear here under any
// code path.
type Result struct {
	Token   string                 `json:"token"`
	Account accounts.PublicAccount `json:"user"`
}

// NewService initializes the auth Service with required dependencies.
func NewService(accountRepo accounts.Repo, sessionManager *sessions.Manager, hasher accounts.Hasher) (*Service, error) {
	if accountRepo == nil {
		return nil, errors.New("[auth.NewService] account repo is required")
	}
	if sessionManager == nil {
		return nil, errors.New("[auth.NewService] session manager is required")
	}
	return &Service{
		accounts: accountRepo,
		sessions: sessionManager,
		hasher:   hasher,
	}, nil
}

// Signup registers a new account and opens its first session. Email
// uniqueness is enforced by the store's unique index; a violation surfaces
// as ErrEmailTaken without a second account being created.
func (s *Service) Signup(name, email, password string) (*Result, error) {
	hash, salt, err := s.hasher.Hash(password, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Signup] hasher.Hash")
	}

	account := &accounts.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     true,
	}
	if _, err := s.accounts.Insert(account); err != nil {
		if interrors.Is(err, interrors.ErrEmailTaken) {
			return nil, interrors.ErrEmailTaken
		}
		return nil, errors.Wrap(err, "[Service.Signup] accounts.Insert")
	}

	token, err := s.sessions.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Signup] sessions.Issue")
	}
	return &Result{Token: token, Account: account.Public()}, nil
}

// Login verifies the credentials and opens a new session. Unknown email and
// wrong password are reported identically as invalid credentials, so the
// response cannot be used to enumerate accounts. Each login mints a fresh
// token; earlier sessions stay valid.
func (s *Service) Login(email, password string) (*Result, error) {
	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		if interrors.Is(err, interrors.ErrAccountNotFound) {
			return nil, interrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "[Service.Login] accounts.GetByEmail")
	}

	if !s.hasher.Verify(password, account.PasswordHash, account.Salt) {
		return nil, interrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] sessions.Issue")
	}
	return &Result{Token: token, Account: account.Public()}, nil
}

// Authenticate resolves a raw Authorization header value to the account id
// that owns the session. Missing or unknown tokens surface as typed
// unauthorized errors for the router to map.
func (s *Service) Authenticate(authorizationHeader string) (string, error) {
	return s.sessions.Resolve(authorizationHeader)
}
