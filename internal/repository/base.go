// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// translateWriteError maps store-level constraint failures onto the error
// taxonomy. Uniqueness and foreign keys are the authoritative concurrency
// guard; when a race slips past an advisory existence check, the caller
// receives a conflict rather than an internal error.
func translateWriteError(err error, subject string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError(subject+" already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewConflictError(subject+" references a missing row", err)
	default:
		return models.NewInternalError(err)
	}
}
