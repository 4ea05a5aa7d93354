package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hireboard/recruitment-service/internal/api/dto"
	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/service"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// AuthHandler exposes registration, login, logout and session state.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

func credentials(c *fiber.Ctx) (service.Credentials, error) {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return service.Credentials{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.Credentials{Username: req.Username, Password: req.Password, Role: domain.Role(req.Role)}, nil
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	creds, err := credentials(c)
	if err != nil {
		return err
	}
	user, err := h.auth.Register(c.UserContext(), creds)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"user": dto.NewUserResponse(user)}})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	creds, err := credentials(c)
	if err != nil {
		return err
	}
	result, err := h.auth.Login(c.UserContext(), creds)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":    dto.NewUserResponse(result.User),
			"session": dto.NewSessionResponse(result.Session),
			"auth":    dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.UserContext(), sess.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Session handles GET /session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(sess)})
}
