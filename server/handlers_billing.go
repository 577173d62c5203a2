package server

import (
	"net/http"
)

type createPlanRequest struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"price_monthly"`
	Features     []string `json:"features"`
}

type subscribeRequest struct {
	PlanKey string `json:"plan_key"`
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePlanHandler registers a purchasable plan tier.
func (s *Server) CreatePlanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Key == "" {
			writeError(w, http.StatusBadRequest, "key is required")
			return
		}

		plan, err := s.services.Billing.CreatePlan(req.Key, req.Name, req.PriceMonthly, req.Features)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, plan)
	}
}

// ListPlansHandler returns every registered plan.
func (s *Server) ListPlansHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plans, err := s.services.Billing.ListPlans()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plans)
	}
}

// SubscribeHandler puts the org on a plan. Owners and admins only.
func (s *Server) SubscribeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.PlanKey == "" {
			writeError(w, http.StatusBadRequest, "plan_key is required")
			return
		}

		sub, err := s.services.Billing.Subscribe(r.PathValue("id"), UserID(r), req.PlanKey)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}

// SubscriptionHandler returns the org's subscription. Any member may read.
func (s *Server) SubscriptionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := s.services.Billing.Subscription(r.PathValue("id"), UserID(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}

// CreateProjectHandler adds a project to the org. Owners and admins only.
func (s *Server) CreateProjectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		project, err := s.services.Billing.CreateProject(r.PathValue("id"), UserID(r), req.Name, req.Description)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, project)
	}
}

// ListProjectsHandler lists the org's projects. Any member may list.
func (s *Server) ListProjectsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := s.services.Billing.Projects(r.PathValue("id"), UserID(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, projects)
	}
}
