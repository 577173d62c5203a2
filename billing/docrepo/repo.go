// Package docrepo implements the billing repositories on top of the
// document store.
package docrepo

import (
	"github.com/jrsteele09/go-saas-server/billing"
	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/store"
)

const (
	PlanCollection         = "plan"
	SubscriptionCollection = "subscription"
	ProjectCollection      = "project"
)

var (
	PlanIndexes         = [][]string{{"key"}}
	SubscriptionIndexes = [][]string{{"org_id"}}
)

type PlanRepo struct {
	store store.Store
}

var _ billing.PlanRepo = (*PlanRepo)(nil)

func NewPlanRepo(s store.Store) *PlanRepo {
	return &PlanRepo{store: s}
}

func (r *PlanRepo) Insert(plan *billing.Plan) (string, error) {
	id, err := r.store.Insert(PlanCollection, store.Document{
		"key":           plan.Key,
		"name":          plan.Name,
		"price_monthly": plan.PriceMonthly,
		"features":      append([]string(nil), plan.Features...),
	})
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrPlanExists
		}
		return "", errors.Wrapf(err, "[PlanRepo.Insert] store.Insert")
	}
	plan.ID = id
	return id, nil
}

func (r *PlanRepo) GetByKey(key string) (*billing.Plan, error) {
	doc, err := r.store.FindOne(PlanCollection, store.Filter{"key": key})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrPlanNotFound
		}
		return nil, errors.Wrapf(err, "[PlanRepo.GetByKey] store.FindOne")
	}
	return planFromDocument(doc), nil
}

func (r *PlanRepo) List() ([]*billing.Plan, error) {
	docs, err := r.store.Find(PlanCollection, store.Filter{}, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "[PlanRepo.List] store.Find")
	}
	plans := make([]*billing.Plan, 0, len(docs))
	for _, doc := range docs {
		plans = append(plans, planFromDocument(doc))
	}
	return plans, nil
}

type SubscriptionRepo struct {
	store store.Store
}

var _ billing.SubscriptionRepo = (*SubscriptionRepo)(nil)

func NewSubscriptionRepo(s store.Store) *SubscriptionRepo {
	return &SubscriptionRepo{store: s}
}

func (r *SubscriptionRepo) Insert(sub *billing.Subscription) (string, error) {
	id, err := r.store.Insert(SubscriptionCollection, store.Document{
		"org_id":   sub.OrgID,
		"plan_key": sub.PlanKey,
		"status":   string(sub.Status),
		"provider": sub.Provider,
	})
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrAlreadyExists
		}
		return "", errors.Wrapf(err, "[SubscriptionRepo.Insert] store.Insert")
	}
	sub.ID = id
	return id, nil
}

func (r *SubscriptionRepo) GetByOrg(orgID string) (*billing.Subscription, error) {
	doc, err := r.store.FindOne(SubscriptionCollection, store.Filter{"org_id": orgID})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, "[SubscriptionRepo.GetByOrg] store.FindOne")
	}
	return subscriptionFromDocument(doc), nil
}

func (r *SubscriptionRepo) Update(id, planKey string, status billing.SubscriptionStatus) error {
	err := r.store.Update(SubscriptionCollection, id, store.Document{
		"plan_key": planKey,
		"status":   string(status),
	})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return errors.ErrNotFound
		}
		return errors.Wrapf(err, "[SubscriptionRepo.Update] store.Update")
	}
	return nil
}

type ProjectRepo struct {
	store store.Store
}

var _ billing.ProjectRepo = (*ProjectRepo)(nil)

func NewProjectRepo(s store.Store) *ProjectRepo {
	return &ProjectRepo{store: s}
}

func (r *ProjectRepo) Insert(project *billing.Project) (string, error) {
	id, err := r.store.Insert(ProjectCollection, store.Document{
		"org_id":      project.OrgID,
		"name":        project.Name,
		"description": project.Description,
		"status":      project.Status,
	})
	if err != nil {
		return "", errors.Wrapf(err, "[ProjectRepo.Insert] store.Insert")
	}
	project.ID = id
	return id, nil
}

func (r *ProjectRepo) ListByOrg(orgID string) ([]*billing.Project, error) {
	docs, err := r.store.Find(ProjectCollection, store.Filter{"org_id": orgID}, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "[ProjectRepo.ListByOrg] store.Find")
	}
	projects := make([]*billing.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, projectFromDocument(doc))
	}
	return projects, nil
}

func planFromDocument(doc store.Document) *billing.Plan {
	p := &billing.Plan{Features: []string{}}
	p.ID, _ = doc["_id"].(string)
	p.Key, _ = doc["key"].(string)
	p.Name, _ = doc["name"].(string)
	p.PriceMonthly, _ = doc["price_monthly"].(float64)
	if features, ok := doc["features"].([]string); ok {
		p.Features = features
	}
	return p
}

func subscriptionFromDocument(doc store.Document) *billing.Subscription {
	s := &billing.Subscription{}
	s.ID, _ = doc["_id"].(string)
	s.OrgID, _ = doc["org_id"].(string)
	s.PlanKey, _ = doc["plan_key"].(string)
	if status, ok := doc["status"].(string); ok {
		s.Status = billing.SubscriptionStatus(status)
	}
	s.Provider, _ = doc["provider"].(string)
	return s
}

func projectFromDocument(doc store.Document) *billing.Project {
	p := &billing.Project{}
	p.ID, _ = doc["_id"].(string)
	p.OrgID, _ = doc["org_id"].(string)
	p.Name, _ = doc["name"].(string)
	p.Description, _ = doc["description"].(string)
	p.Status, _ = doc["status"].(string)
	return p
}
