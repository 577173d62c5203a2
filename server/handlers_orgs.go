package server

import (
	"net/http"

	"github.com/jrsteele09/go-saas-server/orgs"
)

type createOrgRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type inviteRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type inviteResponse struct {
	Membership *orgs.Membership `json:"membership"`
	Existing   bool             `json:"existing"`
}

// CreateOrgHandler creates an organization owned by the caller.
func (s *Server) CreateOrgHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrgRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		org, err := s.services.Orgs.Create(req.Name, req.Slug, UserID(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, org)
	}
}

// ListOrgsHandler lists the organizations the caller belongs to.
func (s *Server) ListOrgsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := s.services.Orgs.ListForUser(UserID(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// InviteHandler adds a user to the org. Owners and admins only; a repeat
// invite returns the existing membership unchanged.
func (s *Server) InviteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req inviteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		result, err := s.services.Orgs.Invite(r.PathValue("id"), UserID(r), req.UserID, orgs.Role(req.Role))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		status := http.StatusCreated
		if result.Existing {
			status = http.StatusOK
		}
		writeJSON(w, status, inviteResponse{Membership: result.Membership, Existing: result.Existing})
	}
}

// MembersHandler lists the org's memberships. Any member may list.
func (s *Server) MembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := s.services.Orgs.Members(r.PathValue("id"), UserID(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, members)
	}
}
