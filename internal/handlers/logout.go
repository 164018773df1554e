package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-budget-stats/internal/jwt"
)

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler revoking the current session token.
// @Summary User logout
// @Tags auth
// @Success 204 "Session revoked"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, signInURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r, signInURL)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), id.TokenID, id.ExpiresAt); err != nil {
			reqLog(r).Errorw("failed to logout", "userID", id.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}
