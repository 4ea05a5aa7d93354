package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/auth"
	"github.com/hireboard/recruitment-service/internal/domain"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// currentSession returns the session the auth middleware attached.
func currentSession(c *fiber.Ctx) (*domain.Session, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Session == nil {
		return nil, apperrors.NewUnauthorized("login required")
	}
	return principal.Session, nil
}

func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{name: c.Params(name)})
	}
	return id, nil
}
