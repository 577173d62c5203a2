package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type rootResponse struct {
	App    string `json:"app"`
	Status string `json:"status"`
}

type healthResponse struct {
	Status      string   `json:"status"`
	Store       string   `json:"store"`
	Collections []string `json:"collections,omitempty"`
}

// RootHandler reports the service name and liveness.
func (s *Server) RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rootResponse{
			App:    s.config.GetAppName(),
			Status: "ok",
		})
	}
}

// HealthHandler probes the document store. When the store is unreachable
// the service reports degraded rather than failing the request.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections, err := s.store.Collections()
		if err != nil {
			log.Warn().Err(err).Msg("[HealthHandler] store probe failed")
			writeJSON(w, http.StatusOK, healthResponse{Status: "degraded", Store: "unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:      "ok",
			Store:       "reachable",
			Collections: collections,
		})
	}
}
