// internal/api/server.go

// Package api exposes the audit flow over HTTP: question catalog, session
// lifecycle, and results. Handlers hold no state of their own; everything
// lives in the session store.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/catalog"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/config"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/logger"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/metrics"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/observability"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/session"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/submission"
)

// Server wires the catalog, session store and submission dispatcher behind
// the HTTP API.
type Server struct {
	cfg        config.ServerConfig
	catalog    *catalog.Catalog
	store      session.Store
	dispatcher submission.Dispatcher
	obs        *observability.Observability
	logger     logger.Logger

	router *mux.Router
	server *http.Server
}

func NewServer(
	cfg config.ServerConfig,
	cat *catalog.Catalog,
	store session.Store,
	dispatcher submission.Dispatcher,
	obs *observability.Observability,
	log logger.Logger,
) *Server {
	s := &Server{
		cfg:        cfg,
		catalog:    cat,
		store:      store,
		dispatcher: dispatcher,
		obs:        obs,
		logger:     log,
		router:     mux.NewRouter(),
	}

	s.setupRoutes()
	s.setupMiddleware()

	var handler http.Handler = s.router
	if cfg.EnableCORS {
		handler = s.corsHandler().Handler(handler)
	}

	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/questions", s.handleListQuestions).Methods("GET")

	audits := api.PathPrefix("/audits").Subrouter()
	audits.HandleFunc("", s.handleStartAudit).Methods("POST")
	audits.HandleFunc("/{id}", s.handleGetAudit).Methods("GET")
	audits.HandleFunc("/{id}/answers/{questionId}", s.handleRecordAnswer).Methods("PUT")
	audits.HandleFunc("/{id}/back", s.handleBack).Methods("POST")
	audits.HandleFunc("/{id}/submit", s.handleSubmit).Methods("POST")
	audits.HandleFunc("/{id}/results", s.handleResults).Methods("GET")

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func (s *Server) setupMiddleware() {
	s.router.Use(s.metricsMiddleware)
}

func (s *Server) corsHandler() *cors.Cors {
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
}

// Start blocks serving HTTP until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("starting audit API server", map[string]interface{}{
		"addr": s.server.Addr,
	})
	return s.server.ListenAndServe()
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping audit API server", nil)
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}

		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder captures the status code for the metrics middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
