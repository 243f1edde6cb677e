package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"trailrace/internal/shared/authz"
)

// The platform server hosts one side of the system per process: the command
// mux mutates the write store and publishes events, the query mux serves the
// read replica. Authentication is an external gate; requests arrive with an
// opaque role claim in the X-User-Role header and the capability check runs
// here, before any handler.

const roleHeader = "X-User-Role"

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

// requireRole enforces the capability check. Missing claim answers 401,
// unknown or insufficient role answers 403.
func requireRole(w http.ResponseWriter, r *http.Request, permission authz.Permission, logger *slog.Logger) bool {
	raw := r.Header.Get(roleHeader)
	if raw == "" {
		writeError(w, http.StatusUnauthorized, "missing_role", "X-User-Role header is required")
		return false
	}

	role, ok := authz.ParseRole(raw)
	if !ok || !authz.Allowed(role, permission) {
		if logger != nil {
			logger.Warn("authorization denied",
				"event", "http_authorization_denied",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"role", raw,
				"permission", string(permission),
				"path", r.URL.Path,
			)
		}
		writeError(w, http.StatusForbidden, "forbidden", "role does not carry the required permission")
		return false
	}
	return true
}
