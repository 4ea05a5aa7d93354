package service

import (
	"context"
	"errors"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/session"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

// saveSession persists navigation changes made during a request.
func saveSession(ctx context.Context, store session.Store, sess *domain.Session) error {
	if store == nil || sess == nil {
		return nil
	}
	if err := store.Update(ctx, sess); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return apperrors.NewUnauthorized("session expired")
		}
		return err
	}
	return nil
}

func requireRole(sess *domain.Session, role domain.Role) error {
	if sess == nil {
		return apperrors.NewUnauthorized("login required")
	}
	if sess.Role != role {
		return apperrors.NewForbidden(string(role) + " role required")
	}
	return nil
}

func int64Ptr(v int64) *int64 {
	return &v
}
