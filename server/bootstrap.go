package server

import (
	"github.com/jrsteele09/go-saas-server/accounts"
	accountrepo "github.com/jrsteele09/go-saas-server/accounts/docrepo"
	"github.com/jrsteele09/go-saas-server/auth"
	"github.com/jrsteele09/go-saas-server/billing"
	billingrepo "github.com/jrsteele09/go-saas-server/billing/docrepo"
	"github.com/jrsteele09/go-saas-server/catalog"
	catalogrepo "github.com/jrsteele09/go-saas-server/catalog/docrepo"
	"github.com/jrsteele09/go-saas-server/internal/config"
	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/orgs"
	orgrepo "github.com/jrsteele09/go-saas-server/orgs/docrepo"
	"github.com/jrsteele09/go-saas-server/sessions"
	sessionrepo "github.com/jrsteele09/go-saas-server/sessions/docrepo"
	"github.com/jrsteele09/go-saas-server/store"
	"github.com/pkg/errors"
)

// defaultPlans are ensured at startup so a fresh deployment has something
// to subscribe to. Existing plans are never overwritten.
var defaultPlans = []struct {
	Key          string
	Name         string
	PriceMonthly float64
	Features     []string
}{
	{"starter", "Starter", 9.0, []string{"3 projects", "community support"}},
	{"pro", "Pro", 29.0, []string{"unlimited projects", "priority support"}},
	{"scale", "Scale", 99.0, []string{"unlimited projects", "dedicated support", "SLA"}},
}

// UniqueIndexes declares every storage-level uniqueness constraint the
// services rely on. Constraint violations, not pre-insert reads, are the
// authoritative conflict signal.
func UniqueIndexes() map[string][][]string {
	return map[string][][]string{
		accountrepo.Collection:             accountrepo.Indexes,
		sessionrepo.Collection:             sessionrepo.Indexes,
		orgrepo.MembershipCollection:       orgrepo.MembershipIndexes,
		billingrepo.PlanCollection:         billingrepo.PlanIndexes,
		billingrepo.SubscriptionCollection: billingrepo.SubscriptionIndexes,
		catalogrepo.CategoryCollection:     catalogrepo.CategoryIndexes,
		catalogrepo.ProductCollection:      catalogrepo.ProductIndexes,
		catalogrepo.FavoriteCollection:     catalogrepo.FavoriteIndexes,
	}
}

// Bootstrap wires the full dependency graph over the given document store
// and ensures the default plans exist.
func Bootstrap(cfg config.Config, docStore store.Store) (*Server, error) {
	sessionManager, err := sessions.NewManager(sessionrepo.New(docStore), cfg.GetTokenLength())
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] sessions.NewManager")
	}

	hasher := accounts.NewHasher(cfg.GetHashIterations(), cfg.GetSaltLength())
	authService, err := auth.NewService(accountrepo.New(docStore), sessionManager, hasher)
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] auth.NewService")
	}

	orgService, err := orgs.NewService(orgs.Repos{
		Orgs:        orgrepo.NewOrgRepo(docStore),
		Memberships: orgrepo.NewMembershipRepo(docStore),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] orgs.NewService")
	}

	billingService, err := billing.NewService(billing.Repos{
		Plans:         billingrepo.NewPlanRepo(docStore),
		Subscriptions: billingrepo.NewSubscriptionRepo(docStore),
		Projects:      billingrepo.NewProjectRepo(docStore),
	}, orgService.Guard())
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] billing.NewService")
	}

	catalogService, err := catalog.NewService(catalog.Repos{
		Categories: catalogrepo.NewCategoryRepo(docStore),
		Products:   catalogrepo.NewProductRepo(docStore),
		Offers:     catalogrepo.NewOfferRepo(docStore),
		Favorites:  catalogrepo.NewFavoriteRepo(docStore),
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] catalog.NewService")
	}

	if err := ensureDefaultPlans(billingService); err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] ensureDefaultPlans")
	}

	return New(cfg, Services{
		Auth:    authService,
		Orgs:    orgService,
		Billing: billingService,
		Catalog: catalogService,
	}, docStore), nil
}

func ensureDefaultPlans(billingService *billing.Service) error {
	for _, p := range defaultPlans {
		_, err := billingService.CreatePlan(p.Key, p.Name, p.PriceMonthly, p.Features)
		if err != nil && !interrors.Is(err, interrors.ErrPlanExists) {
			return err
		}
	}
	return nil
}
