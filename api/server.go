package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"request-portal/api/handlers"
	"request-portal/config"
	"request-portal/core/portal"
	"request-portal/core/suggest"
	"request-portal/core/utils"
)

// BackgroundWorker is anything the runtime starts alongside the HTTP
// server and stops on shutdown.
type BackgroundWorker interface {
	Start()
	Stop()
}

type ServerDeps struct {
	Factory  *portal.Factory
	Registry *portal.Registry
	Index    *suggest.Index
}

type Server struct {
	cfg      *config.AppConfig
	factory  *portal.Factory
	registry *portal.Registry
	index    *suggest.Index
	logger   *utils.Logger
	router   chi.Router
}

func NewServer(cfg *config.AppConfig, deps ServerDeps, logger *utils.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		factory:  deps.Factory,
		registry: deps.Registry,
		index:    deps.Index,
		logger:   logger,
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) newRouter() chi.Router {
	ph := handlers.NewPortalHandler(s.cfg, s.factory, s.registry, s.logger)
	sh := handlers.NewSuggestionsHandler(s.index)

	r := chi.NewRouter()
	r.Use(s.recoverMiddleware)
	r.Use(s.requestIDMiddleware)
	r.Use(s.payloadLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/suggestions", sh.Lookup)
		r.Post("/portal/session", ph.CreateSession)
		r.Group(func(r chi.Router) {
			r.Use(s.sessionMiddleware)
			r.Delete("/portal/session", ph.DeleteSession)
			r.Get("/portal/state", ph.State)
			r.Post("/portal/subject", ph.SubjectInput)
			r.Post("/portal/subject/key", ph.SubjectKey)
			r.Post("/portal/subject/select", ph.SubjectSelect)
			r.Post("/portal/subject/focus", ph.SubjectFocus)
			r.Post("/portal/subject/blur", ph.SubjectBlur)
			r.Post("/portal/description", ph.Description)
			r.Post("/portal/incidents", ph.SubmitIncident)
			r.Post("/portal/notification/ack", ph.AckNotification)
		})
	})
	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.ListenAddr, s.router)
}
