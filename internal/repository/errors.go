package repository

import (
	"errors"
	"fmt"

	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

var (
	// ErrDuplicate is returned when an insert collides with a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrMissingReference is returned when an insert points at a row that does not exist.
	ErrMissingReference = errors.New("referenced record missing")
)

// classifyWriteErr maps constraint violations onto the package sentinels.
func classifyWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case apperrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", ErrMissingReference, err)
	}
	return err
}
