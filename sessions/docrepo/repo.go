// Package docrepo implements sessions.Repo on top of the document store.
package docrepo

import (
	"time"

	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/sessions"
	"github.com/jrsteele09/go-saas-server/store"
)

const Collection = "session"

var Indexes = [][]string{{"token"}}

type SessionRepo struct {
	store store.Store
}

var _ sessions.Repo = (*SessionRepo)(nil)

func New(s store.Store) *SessionRepo {
	return &SessionRepo{store: s}
}

func (r *SessionRepo) Insert(session *sessions.Session) error {
	id, err := r.store.Insert(Collection, store.Document{
		"user_id":    session.UserID,
		"token":      session.Token,
		"created_at": session.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return errors.Wrapf(err, "[SessionRepo.Insert] store.Insert")
	}
	session.ID = id
	return nil
}

func (r *SessionRepo) GetByToken(token string) (*sessions.Session, error) {
	doc, err := r.store.FindOne(Collection, store.Filter{"token": token})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, "[SessionRepo.GetByToken] store.FindOne")
	}
	return fromDocument(doc), nil
}

func fromDocument(doc store.Document) *sessions.Session {
	s := &sessions.Session{}
	s.ID, _ = doc["_id"].(string)
	s.UserID, _ = doc["user_id"].(string)
	s.Token, _ = doc["token"].(string)
	if raw, ok := doc["created_at"].(string); ok {
		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, raw)
	}
	return s
}
