package middleware

import (
	"context"
	"net/http"
	"strings"

	"customer-crm/pkg/gate"
	"customer-crm/pkg/utils"

	"go.uber.org/zap"
)

// IdentityResolver maps a session token to its identity, or nil when the
// token names no live session.
type IdentityResolver interface {
	Identify(ctx context.Context, token string) (*gate.Identity, error)
}

// Session resolves the request identity from the session cookie, falling
// back to an Authorization: Bearer header. It never rejects a request;
// guards decide what anonymous callers may reach.
func Session(resolver IdentityResolver, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.Identify(r.Context(), token)
			if err != nil {
				logger.Error("Failed to resolve session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Token tetap disimpan supaya logout bisa revoke
			ctx := utils.SetTokenContext(r.Context(), token)
			if identity != nil {
				ctx = utils.SetIdentityContext(ctx, identity)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Guard applies g to the request identity: redirects become 302 and
// forbidden becomes 403 before the handler runs.
func Guard(g gate.Guard, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := utils.GetIdentityFromContext(r.Context())
			decision := g(identity)

			switch decision.Outcome {
			case gate.Allow:
				next.ServeHTTP(w, r)
			case gate.Redirect:
				utils.ResponseRedirect(w, r, decision.RedirectTo)
			default:
				fields := []zap.Field{
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				}
				if identity != nil {
					fields = append(fields,
						zap.String("user_id", identity.UserID.String()),
						zap.Strings("groups", identity.Groups))
				}
				logger.Warn("Access denied", fields...)
				utils.ResponseForbidden(w, "You are not authorized to view this page")
			}
		})
	}
}
