package identity

import (
	"context"
	"time"
)

// Identity is the resolved authenticated user of a request.
type Identity struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

type contextKey struct{}

var identityKey = contextKey{}

// WithIdentity stores id in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the identity stored in ctx. The second result is false
// when no authenticated user is present.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}
