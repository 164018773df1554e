package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-budget-stats/internal/identity"
	"github.com/sbilibin2017/gw-budget-stats/internal/jwt"
	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports tokens revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware resolves the authenticated user from the request token and
// stores it in the request context. Requests without a valid, unrevoked token
// are redirected to signInURL. revocations may be nil.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker, signInURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				http.Redirect(w, r, signInURL, http.StatusTemporaryRedirect)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				http.Redirect(w, r, signInURL, http.StatusTemporaryRedirect)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.Log.Errorw("failed to check token revocation", "tokenID", claims.ID, "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if revoked {
					logger.Log.Warnw("authorization failed: token revoked", "tokenID", claims.ID)
					http.Redirect(w, r, signInURL, http.StatusTemporaryRedirect)
					return
				}
			}

			id := identity.Identity{
				UserID:  claims.UserID,
				TokenID: claims.ID,
			}
			if claims.ExpiresAt != nil {
				id.ExpiresAt = claims.ExpiresAt.Time
			}

			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(ctx, id)))
		})
	}
}
