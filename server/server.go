package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-saas-server/auth"
	"github.com/jrsteele09/go-saas-server/billing"
	"github.com/jrsteele09/go-saas-server/catalog"
	"github.com/jrsteele09/go-saas-server/internal/config"
	"github.com/jrsteele09/go-saas-server/orgs"
	"github.com/jrsteele09/go-saas-server/store"
	"github.com/rs/zerolog/log"
)

// Services groups the domain services the HTTP layer dispatches into.
type Services struct {
	Auth    *auth.Service
	Orgs    *orgs.Service
	Billing *billing.Service
	Catalog *catalog.Service
}

type Server struct {
	env      string // Environment (e.g., "DEV", "production")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	services Services
	store    store.Store
}

func New(config config.Config, services Services, docStore store.Store) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   config,
		services: services,
		store:    docStore,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			log.Debug().Str("method", parts[0]).Str("path", parts[1]).Msg("route")
		} else {
			log.Debug().Str("path", parts[0]).Msg("route")
		}
	}
}
