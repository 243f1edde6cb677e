package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	commandservice "trailrace/contexts/race-application/command-service"
	commanderrors "trailrace/contexts/race-application/command-service/domain/errors"
	commandhttp "trailrace/contexts/race-application/command-service/transport/http"
	_ "trailrace/internal/platform/httpserver/docs"
	"trailrace/internal/shared/authz"
)

// CommandServer exposes the write-side API.
type CommandServer struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	module commandservice.Module
}

func NewCommandServer(module commandservice.Module, logger *slog.Logger, addr string) *CommandServer {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &CommandServer{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		module: module,
	}
	s.registerRoutes()
	return s
}

func (s *CommandServer) Start() error {
	s.logger.Info("command http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Mux exposes the routing table for in-process tests.
func (s *CommandServer) Mux() *http.ServeMux {
	return s.mux
}

func (s *CommandServer) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/races", s.handleCreateRace)
	s.mux.HandleFunc("PUT /api/races/{race_id}", s.handleUpdateRace)
	s.mux.HandleFunc("DELETE /api/races/{race_id}", s.handleDeleteRace)
	s.mux.HandleFunc("POST /api/applications", s.handleCreateApplication)
	s.mux.HandleFunc("DELETE /api/applications/{application_id}", s.handleDeleteApplication)
}

func (s *CommandServer) handleCreateRace(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionRaceCreate, s.logger) {
		return
	}

	var req commandhttp.CreateRaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.module.Handler.CreateRaceHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *CommandServer) handleUpdateRace(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionRaceUpdate, s.logger) {
		return
	}

	var req commandhttp.UpdateRaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.module.Handler.UpdateRaceHandler(r.Context(), r.PathValue("race_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *CommandServer) handleDeleteRace(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionRaceDelete, s.logger) {
		return
	}

	if err := s.module.Handler.DeleteRaceHandler(r.Context(), r.PathValue("race_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *CommandServer) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionApplicationCreate, s.logger) {
		return
	}

	var req commandhttp.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.module.Handler.CreateApplicationHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *CommandServer) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, authz.PermissionApplicationDelete, s.logger) {
		return
	}

	if err := s.module.Handler.DeleteApplicationHandler(r.Context(), r.PathValue("application_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *CommandServer) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commanderrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, commanderrors.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, commanderrors.ErrDependencyUnavailable):
		writeError(w, http.StatusServiceUnavailable, "dependency_unavailable", "a downstream dependency is unavailable")
	default:
		s.logger.Error("command request failed",
			"event", "http_command_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
