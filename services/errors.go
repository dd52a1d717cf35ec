// Package services holds the storefront's business rules. Every function
// takes the *gorm.DB it should run against, so callers decide whether an
// operation joins an existing transaction.
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error classes. Every error returned by this package wraps exactly one.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflicting state")
)

var (
	ErrEmptyCart         = fmt.Errorf("cart is empty: %w", ErrConflict)
	ErrInsufficientStock = fmt.Errorf("insufficient stock: %w", ErrConflict)
	ErrInvalidTransition = fmt.Errorf("status transition not allowed: %w", ErrConflict)
	ErrDuplicate         = fmt.Errorf("already exists: %w", ErrConflict)
	ErrUnknownStatus     = fmt.Errorf("unrecognized status: %w", ErrInvalidInput)
	ErrInvalidQuantity   = fmt.Errorf("quantity must be greater than zero: %w", ErrInvalidInput)
)

func notFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

func duplicate(entity, field string, value any) error {
	return fmt.Errorf("%s with %s %v: %w", entity, field, value, ErrDuplicate)
}

// findByID loads dest by primary key and maps a missing row to ErrNotFound.
func findByID(db *gorm.DB, dest any, entity string, id uint) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity, id)
	}
	return err
}

func exists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
