package billing

import (
	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/orgs"
	"github.com/pkg/errors"
)

// Repos holds all repository dependencies for the billing Service.
type Repos struct {
	Plans         PlanRepo
	Subscriptions SubscriptionRepo
	Projects      ProjectRepo
}

// Service implements plan, subscription, and project operations. Org-scoped
// actions are gated through the access-control guard with the exact role
// set each operation accepts.
type Service struct {
	repos Repos
	guard *orgs.Guard
}

// NewService initializes the billing Service with required dependencies.
func NewService(repos Repos, guard *orgs.Guard) (*Service, error) {
	if repos.Plans == nil {
		return nil, errors.New("[billing.NewService] Plans repo is required")
	}
	if repos.Subscriptions == nil {
		return nil, errors.New("[billing.NewService] Subscriptions repo is required")
	}
	if repos.Projects == nil {
		return nil, errors.New("[billing.NewService] Projects repo is required")
	}
	if guard == nil {
		return nil, errors.New("[billing.NewService] guard is required")
	}
	return &Service{repos: repos, guard: guard}, nil
}

// CreatePlan registers a purchasable tier. The plan key is globally unique.
func (s *Service) CreatePlan(key, name string, priceMonthly float64, features []string) (*Plan, error) {
	if features == nil {
		features = []string{}
	}
	plan := &Plan{Key: key, Name: name, PriceMonthly: priceMonthly, Features: features}
	if _, err := s.repos.Plans.Insert(plan); err != nil {
		if interrors.Is(err, interrors.ErrPlanExists) {
			return nil, interrors.ErrPlanExists
		}
		return nil, errors.Wrap(err, "[Service.CreatePlan] plans.Insert")
	}
	return plan, nil
}

// ListPlans returns every registered plan.
func (s *Service) ListPlans() ([]*Plan, error) {
	return s.repos.Plans.List()
}

// Subscribe puts the org on the given plan. Owners and admins only. When
// the org already holds a subscription row the row is patched in place
// (plan key and status), otherwise a new row is inserted.
func (s *Service) Subscribe(orgID, callerID, planKey string) (*Subscription, error) {
	if _, err := s.guard.Authorize(orgID, callerID, orgs.RoleOwner, orgs.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.repos.Plans.GetByKey(planKey); err != nil {
		if interrors.Is(err, interrors.ErrPlanNotFound) {
			return nil, interrors.ErrPlanNotFound
		}
		return nil, errors.Wrap(err, "[Service.Subscribe] plans.GetByKey")
	}

	existing, err := s.repos.Subscriptions.GetByOrg(orgID)
	switch {
	case err == nil:
		if err := s.repos.Subscriptions.Update(existing.ID, planKey, StatusActive); err != nil {
			return nil, errors.Wrap(err, "[Service.Subscribe] subscriptions.Update")
		}
		existing.PlanKey = planKey
		existing.Status = StatusActive
		return existing, nil
	case interrors.Is(err, interrors.ErrNotFound):
		sub := &Subscription{OrgID: orgID, PlanKey: planKey, Status: StatusActive, Provider: "internal"}
		if _, err := s.repos.Subscriptions.Insert(sub); err != nil {
			return nil, errors.Wrap(err, "[Service.Subscribe] subscriptions.Insert")
		}
		return sub, nil
	default:
		return nil, errors.Wrap(err, "[Service.Subscribe] subscriptions.GetByOrg")
	}
}

// Subscription returns the org's subscription. Any member may read it.
func (s *Service) Subscription(orgID, callerID string) (*Subscription, error) {
	if _, err := s.guard.Authorize(orgID, callerID); err != nil {
		return nil, err
	}
	sub, err := s.repos.Subscriptions.GetByOrg(orgID)
	if err != nil {
		if interrors.Is(err, interrors.ErrNotFound) {
			return nil, interrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "[Service.Subscription] subscriptions.GetByOrg")
	}
	return sub, nil
}

// CreateProject adds a project to the org. Owners and admins only.
func (s *Service) CreateProject(orgID, callerID, name, description string) (*Project, error) {
	if _, err := s.guard.Authorize(orgID, callerID, orgs.RoleOwner, orgs.RoleAdmin); err != nil {
		return nil, err
	}
	project := &Project{OrgID: orgID, Name: name, Description: description, Status: "active"}
	if _, err := s.repos.Projects.Insert(project); err != nil {
		return nil, errors.Wrap(err, "[Service.CreateProject] projects.Insert")
	}
	return project, nil
}

// Projects lists the org's projects. Any member may list.
func (s *Service) Projects(orgID, callerID string) ([]*Project, error) {
	if _, err := s.guard.Authorize(orgID, callerID); err != nil {
		return nil, err
	}
	projects, err := s.repos.Projects.ListByOrg(orgID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Projects] projects.ListByOrg")
	}
	return projects, nil
}
