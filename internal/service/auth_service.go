package service

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hireboard/recruitment-service/internal/auth"
	"github.com/hireboard/recruitment-service/internal/config"
	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/events"
	"github.com/hireboard/recruitment-service/internal/repository"
	"github.com/hireboard/recruitment-service/internal/session"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

const invalidCredentials = "invalid username, password, or role"

// AuthService coordinates registration, login and logout.
type AuthService struct {
	users      repository.UserRepository
	sessions   session.Store
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Sessions   session.Store
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Credentials is the role-scoped login triple.
type Credentials struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Validate checks that every field is present and the role is known.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.RuneLength(1, 64)),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.Role, validation.Required, validation.In(roleValues()...)),
	)
}

// LoginResult carries the issued token and the new session.
type LoginResult struct {
	User      *domain.User
	Session   *domain.Session
	Token     string
	ExpiresAt time.Time
}

// Register creates an account storing only the password hash.
func (s *AuthService) Register(ctx context.Context, in Credentials) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := in.Validate(); err != nil {
		return nil, apperrors.FromValidation("invalid registration", err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Username: in.Username, PasswordHash: hash, Role: in.Role}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewDuplicateUsername(in.Username)
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventUserRegistered,
		events.Actor{UserID: user.ID, Role: user.Role},
		events.UserRegisteredPayload{Username: user.Username}))
	return user, nil
}

// Authenticate succeeds only when the username exists, the password matches
// and the stored role equals the requested one. Every mismatch yields the
// same error.
func (s *AuthService) Authenticate(ctx context.Context, in Credentials) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := in.Validate(); err != nil {
		return nil, apperrors.FromValidation("invalid login", err)
	}

	user, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized(invalidCredentials)
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, in.Password); err != nil {
		return nil, apperrors.NewUnauthorized(invalidCredentials)
	}
	if user.Role != in.Role {
		return nil, apperrors.NewUnauthorized(invalidCredentials)
	}
	return user, nil
}

// Login authenticates and opens a session bound to a signed token.
func (s *AuthService) Login(ctx context.Context, in Credentials) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, in)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{UserID: user.ID, Username: user.Username, Role: user.Role}
	if err := s.sessions.Create(ctx, sess, s.tokenMgr.TTL()); err != nil {
		return nil, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role, sess.ID)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	return &LoginResult{User: user, Session: sess, Token: token, ExpiresAt: exp}, nil
}

// Logout discards the session; tokens bound to it stop working.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func roleValues() []interface{} {
	values := make([]interface{}, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		values = append(values, r)
	}
	return values
}
