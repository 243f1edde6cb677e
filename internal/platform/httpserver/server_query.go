package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	queryservice "trailrace/contexts/race-application/query-service"
	queryerrors "trailrace/contexts/race-application/query-service/domain/errors"
	"trailrace/internal/shared/authz"
)

// QueryServer exposes the read-side API against the replica store.
type QueryServer struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	module queryservice.Module
}

func NewQueryServer(module queryservice.Module, logger *slog.Logger, addr string) *QueryServer {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8081"
	}

	s := &QueryServer{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		module: module,
	}
	s.registerRoutes()
	return s
}

func (s *QueryServer) Start() error {
	s.logger.Info("query http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Mux exposes the routing table for in-process tests.
func (s *QueryServer) Mux() *http.ServeMux {
	return s.mux
}

func (s *QueryServer) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/races", s.handleListRaces)
	s.mux.HandleFunc("GET /api/races/{race_id}", s.handleGetRace)
	s.mux.HandleFunc("GET /api/applications", s.handleListApplications)
	s.mux.HandleFunc("GET /api/applications/{application_id}", s.handleGetApplication)
	s.mux.HandleFunc("GET /api/applications/race/{race_id}", s.handleListApplicationsByRace)
}

func (s *QueryServer) handleListRaces(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionRaceRead, s.logger) {
		return
	}

	resp, err := s.module.Handler.ListRacesHandler(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *QueryServer) handleGetRace(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionRaceRead, s.logger) {
		return
	}

	resp, err := s.module.Handler.GetRaceHandler(r.Context(), r.PathValue("race_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *QueryServer) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionApplicationRead, s.logger) {
		return
	}

	resp, err := s.module.Handler.ListApplicationsHandler(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *QueryServer) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionApplicationRead, s.logger) {
		return
	}

	resp, err := s.module.Handler.GetApplicationHandler(r.Context(), r.PathValue("application_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *QueryServer) handleListApplicationsByRace(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionApplicationRead, s.logger) {
		return
	}

	resp, err := s.module.Handler.ListApplicationsByRaceHandler(r.Context(), r.PathValue("race_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *QueryServer) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, queryerrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, queryerrors.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, queryerrors.ErrDependencyUnavailable):
		writeError(w, http.StatusServiceUnavailable, "dependency_unavailable", "a downstream dependency is unavailable")
	default:
		s.logger.Error("query request failed",
			"event", "http_query_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
