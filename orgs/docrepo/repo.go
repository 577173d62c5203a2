// Package docrepo implements orgs.OrgRepo and orgs.MembershipRepo on top of
// the document store.
package docrepo

import (
	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/orgs"
	"github.com/jrsteele09/go-saas-server/store"
)

const (
	OrgCollection        = "organization"
	MembershipCollection = "membership"
)

// MembershipIndexes enforces at most one membership row per (org, user).
var MembershipIndexes = [][]string{{"org_id", "user_id"}}

type OrgRepo struct {
	store store.Store
}

var _ orgs.OrgRepo = (*OrgRepo)(nil)

func NewOrgRepo(s store.Store) *OrgRepo {
	return &OrgRepo{store: s}
}

func (r *OrgRepo) Insert(org *orgs.Organization) (string, error) {
	id, err := r.store.Insert(OrgCollection, store.Document{
		"name":     org.Name,
		"slug":     org.Slug,
		"owner_id": org.OwnerID,
	})
	if err != nil {
		return "", errors.Wrapf(err, "[OrgRepo.Insert] store.Insert")
	}
	org.ID = id
	return id, nil
}

func (r *OrgRepo) Get(id string) (*orgs.Organization, error) {
	doc, err := r.store.FindOne(OrgCollection, store.Filter{"_id": id})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrOrgNotFound
		}
		return nil, errors.Wrapf(err, "[OrgRepo.Get] store.FindOne")
	}
	return orgFromDocument(doc), nil
}

func (r *OrgRepo) ListForOwner(ownerID string) ([]*orgs.Organization, error) {
	docs, err := r.store.Find(OrgCollection, store.Filter{"owner_id": ownerID}, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "[OrgRepo.ListForOwner] store.Find")
	}
	result := make([]*orgs.Organization, 0, len(docs))
	for _, doc := range docs {
		result = append(result, orgFromDocument(doc))
	}
	return result, nil
}

type MembershipRepo struct {
	store store.Store
}

var _ orgs.MembershipRepo = (*MembershipRepo)(nil)

func NewMembershipRepo(s store.Store) *MembershipRepo {
	return &MembershipRepo{store: s}
}

func (r *MembershipRepo) Insert(m *orgs.Membership) (string, error) {
	id, err := r.store.Insert(MembershipCollection, store.Document{
		"org_id":  m.OrgID,
		"user_id": m.UserID,
		"role":    string(m.Role),
	})
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrAlreadyExists
		}
		return "", errors.Wrapf(err, "[MembershipRepo.Insert] store.Insert")
	}
	m.ID = id
	return id, nil
}

func (r *MembershipRepo) Get(orgID, userID string) (*orgs.Membership, error) {
	doc, err := r.store.FindOne(MembershipCollection, store.Filter{"org_id": orgID, "user_id": userID})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, "[MembershipRepo.Get] store.FindOne")
	}
	return membershipFromDocument(doc), nil
}

func (r *MembershipRepo) ListByOrg(orgID string) ([]*orgs.Membership, error) {
	return r.list(store.Filter{"org_id": orgID})
}

func (r *MembershipRepo) ListByUser(userID string) ([]*orgs.Membership, error) {
	return r.list(store.Filter{"user_id": userID})
}

func (r *MembershipRepo) list(filter store.Filter) ([]*orgs.Membership, error) {
	docs, err := r.store.Find(MembershipCollection, filter, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "[MembershipRepo.list] store.Find")
	}
	result := make([]*orgs.Membership, 0, len(docs))
	for _, doc := range docs {
		result = append(result, membershipFromDocument(doc))
	}
	return result, nil
}

func orgFromDocument(doc store.Document) *orgs.Organization {
	org := &orgs.Organization{}
	org.ID, _ = doc["_id"].(string)
	org.Name, _ = doc["name"].(string)
	org.Slug, _ = doc["slug"].(string)
	org.OwnerID, _ = doc["owner_id"].(string)
	return org
}

func membershipFromDocument(doc store.Document) *orgs.Membership {
	m := &orgs.Membership{}
	m.ID, _ = doc["_id"].(string)
	m.OrgID, _ = doc["org_id"].(string)
	m.UserID, _ = doc["user_id"].(string)
	if role, ok := doc["role"].(string); ok {
		m.Role = orgs.Role(role)
	}
	return m
}
