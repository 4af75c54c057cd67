package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/app/models/dto"
	"github.com/oguzk/mentorlink/internal/app/services"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// IdentityKey is the gin context key under which RequireSession stores
// the resolved caller identity.
const IdentityKey = "identity"

// SessionMiddleware guards routes behind session validation
type SessionMiddleware struct {
	sessions   services.SessionService
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions services.SessionService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// RequireSession validates the session cookie and stores the resolved
// identity in the request context. A missing cookie is reported the same
// way as an empty credential.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, err := c.Cookie(m.cookieName)
		if err != nil {
			AbortWithAPIError(c, apperrors.ErrNoSession)
			return
		}

		identity, err := m.sessions.Validate(c.Request.Context(), credential)
		if err != nil {
			AbortWithAPIError(c, err)
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RoleRequired restricts a route to the given user types. It must run
// after RequireSession.
func (m *SessionMiddleware) RoleRequired(allowed ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, userType := range allowed {
			if identity.Type == userType {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// IdentityFromContext returns the identity stored by RequireSession, or
// nil when the route is unguarded.
func IdentityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
