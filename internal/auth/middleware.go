package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/session"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal is the per-request view of the caller: identity from the token
// and the live session it belongs to.
type Principal struct {
	UserID   int64
	Username string
	Role     domain.Role
	Session  *domain.Session
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions session.Store
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	sess, err := m.sessions.Get(c.UserContext(), claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return apperrors.NewUnauthorized("session expired")
		}
		return apperrors.MapError(err)
	}
	if sess.UserID != claims.UserID || sess.Role != claims.Role {
		return apperrors.NewUnauthorized("session does not match token")
	}

	c.Locals(principalKey, &Principal{
		UserID:   sess.UserID,
		Username: sess.Username,
		Role:     sess.Role,
		Session:  sess,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
