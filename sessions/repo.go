package sessions

// Repo defines the interface for session storage operations. The token
// field carries a unique index; tokens are looked up by exact match only.
type Repo interface {
	// Insert persists a new session
	Insert(session *Session) error

	// GetByToken retrieves a session by its exact token value
	GetByToken(token string) (*Session, error)
}
