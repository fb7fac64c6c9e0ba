package utils

import (
	"context"

	"customer-crm/pkg/gate"

	"github.com/google/uuid"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "token"
)

// SetIdentityContext stores the resolved identity for guards and handlers.
func SetIdentityContext(ctx context.Context, identity *gate.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentityFromContext returns the request identity, or nil when anonymous.
func GetIdentityFromContext(ctx context.Context) *gate.Identity {
	identity, _ := ctx.Value(IdentityKey).(*gate.Identity)
	return identity
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	identity := GetIdentityFromContext(ctx)
	if !identity.IsAuthenticated() {
		return uuid.Nil, false
	}
	return identity.UserID, true
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok && token != ""
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
