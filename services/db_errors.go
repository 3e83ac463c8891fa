package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

// translateDBError converts gorm errors into the domain error types handlers
// know how to map. Uniqueness is enforced by database constraints only;
// duplicate-key violations come back here instead of racing pre-checks.
func translateDBError(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrorNotFound{Message: notFoundMsg}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrorConflict{Message: conflictMsg}
	default:
		return err
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
