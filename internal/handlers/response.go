package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-budget-stats/internal/identity"
	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
	"github.com/sbilibin2017/gw-budget-stats/internal/middlewares"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error answer
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid date range
	Error string `json:"error"`
}

const (
	msgInvalidDateRange = "Invalid date range"
	msgInternalError    = "Internal server error"
)

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// reqLog returns the global logger tagged with the request ID of r.
func reqLog(r *http.Request) *zap.SugaredLogger {
	return logger.Log.With("request_id", middlewares.RequestIDFromContext(r.Context()))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// requireIdentity returns the authenticated user of r, or redirects to
// signInURL and reports false when there is none.
func requireIdentity(w http.ResponseWriter, r *http.Request, signInURL string) (identity.Identity, bool) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		reqLog(r).Warnw("unauthenticated request", "uri", r.RequestURI)
		http.Redirect(w, r, signInURL, http.StatusTemporaryRedirect)
		return identity.Identity{}, false
	}
	return id, true
}
