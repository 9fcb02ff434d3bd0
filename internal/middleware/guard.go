package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-shop/internal/domain/access"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/metrics"
)

const SessionCookie = "session"

// IdentityResolver builds the caller's identity from a session token.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*identity.AuthenticatedUser, error)
}

// UserHandler is a gin handler that receives the resolved caller explicitly.
type UserHandler func(c *gin.Context, u *identity.AuthenticatedUser)

// Guard resolves the caller, checks req and only then calls handler. Denials
// never reach the handler.
func Guard(resolver IdentityResolver, req access.Requirement, handler UserHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := resolve(c, resolver)
		if !ok {
			return
		}

		decision := access.Check(u, req)
		if !decision.Allowed {
			deny(c, decision)
			return
		}

		handler(c, u)
	}
}

// Authenticated only requires a session. Inactive accounts pass, so they can
// still read their own profile.
func Authenticated(resolver IdentityResolver, handler UserHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := resolve(c, resolver)
		if !ok {
			return
		}
		if u == nil {
			deny(c, access.Decision{Reason: access.ReasonUnauthenticated})
			return
		}

		handler(c, u)
	}
}

func resolve(c *gin.Context, resolver IdentityResolver) (*identity.AuthenticatedUser, bool) {
	u, err := resolver.Resolve(c.Request.Context(), TokenFrom(c))
	if err != nil {
		if errors.Is(err, identity.ErrMalformedToken) {
			metrics.AccessDenialsTotal.WithLabelValues(string(access.ReasonUnauthenticated)).Inc()
			httperr.Unauthorized(c, "INVALID_TOKEN", "Malformed session token.")
			return nil, false
		}
		httperr.Internal(c, "INTERNAL_ERROR", "Could not resolve the session.")
		return nil, false
	}
	return u, true
}

func deny(c *gin.Context, d access.Decision) {
	reason := string(d.Reason)
	metrics.AccessDenialsTotal.WithLabelValues(reason).Inc()

	if !d.Authenticated() {
		httperr.WriteReason(c, http.StatusUnauthorized, "UNAUTHENTICATED", reason, "Authentication required.")
		return
	}
	httperr.Forbidden(c, "PERMISSION_DENIED", reason, "You do not have access to this resource.")
}

// TokenFrom reads the bearer token, falling back to the session cookie.
func TokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return strings.TrimSpace(h)
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
