package database

import (
	"errors"

	"gorm.io/gorm"

	"agri/pkg/apperrors"
)

// Translate maps a gorm error onto the domain taxonomy: a missing row is
// NotFound for entity, a unique-index hit is a Conflict, anything else is a
// PersistenceError for op.
func Translate(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(entity)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("%s already exists", entity)
	}
	return apperrors.Persistence(op, err)
}
