// Package docrepo implements accounts.Repo on top of the document store.
package docrepo

import (
	"encoding/hex"

	"github.com/jrsteele09/go-saas-server/accounts"
	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/store"
)

// Collection is the account collection name. It carries a unique index on
// the email field.
const Collection = "account"

// Indexes declares the unique indexes this repo relies on. Pass to
// store.NewMemStore at wiring time.
var Indexes = [][]string{{"email"}}

type AccountRepo struct {
	store store.Store
}

var _ accounts.Repo = (*AccountRepo)(nil)

func New(s store.Store) *AccountRepo {
	return &AccountRepo{store: s}
}

func (r *AccountRepo) Insert(account *accounts.Account) (string, error) {
	id, err := r.store.Insert(Collection, toDocument(account))
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrEmailTaken
		}
		return "", errors.Wrapf(err, "[AccountRepo.Insert] store.Insert")
	}
	account.ID = id
	return id, nil
}

func (r *AccountRepo) GetByEmail(email string) (*accounts.Account, error) {
	doc, err := r.store.FindOne(Collection, store.Filter{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, errors.Wrapf(err, "[AccountRepo.GetByEmail] store.FindOne")
	}
	return fromDocument(doc), nil
}

func (r *AccountRepo) GetByID(id string) (*accounts.Account, error) {
	doc, err := r.store.FindOne(Collection, store.Filter{"_id": id})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, errors.Wrapf(err, "[AccountRepo.GetByID] store.FindOne")
	}
	return fromDocument(doc), nil
}

func toDocument(a *accounts.Account) store.Document {
	doc := store.Document{
		"name":          a.Name,
		"email":         a.Email,
		"password_hash": hex.EncodeToString(a.PasswordHash),
		"salt":          hex.EncodeToString(a.Salt),
		"is_active":     a.IsActive,
	}
	if a.AvatarURL != nil {
		doc["avatar_url"] = *a.AvatarURL
	}
	return doc
}

func fromDocument(doc store.Document) *accounts.Account {
	a := &accounts.Account{
		ID:       stringField(doc, "_id"),
		Name:     stringField(doc, "name"),
		Email:    stringField(doc, "email"),
		IsActive: boolField(doc, "is_active"),
	}
	// A decode failure leaves the credential empty, which fails
	// verification instead of crashing.
	a.PasswordHash, _ = hex.DecodeString(stringField(doc, "password_hash"))
	a.Salt, _ = hex.DecodeString(stringField(doc, "salt"))
	if avatar, ok := doc["avatar_url"].(string); ok {
		a.AvatarURL = &avatar
	}
	return a
}

func stringField(doc store.Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

func boolField(doc store.Document, key string) bool {
	b, _ := doc[key].(bool)
	return b
}
