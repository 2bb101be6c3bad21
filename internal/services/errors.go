package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrToppingNotFound is returned when a topping id does not exist
	ErrToppingNotFound = errors.New("topping not found")
	// ErrPizzaNotFound is returned when a pizza id does not exist
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrConflict is returned when a normalized name is already taken
	ErrConflict = errors.New("already exists")
	// ErrInvalidReference is returned when topping ids do not resolve to existing toppings
	ErrInvalidReference = errors.New("invalid topping reference")
)

// ConflictError describes which unique field collided.
// It matches ErrConflict with errors.Is.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a %s with the %s '%s' already exists", e.Entity, e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidReferenceError lists the topping ids that could not be resolved.
// It matches ErrInvalidReference with errors.Is.
type InvalidReferenceError struct {
	IDs []uint
}

func (e *InvalidReferenceError) Error() string {
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, strconv.FormatUint(uint64(id), 10))
	}
	return "invalid topping IDs: " + strings.Join(ids, ", ")
}

func (e *InvalidReferenceError) Unwrap() error {
	return ErrInvalidReference
}

// notFound maps gorm's missing-record error to the given sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// nameConflict maps a unique index violation on the name column to a ConflictError.
// It covers the window where a concurrent writer commits between our check and our insert.
func nameConflict(err error, entity, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Entity: entity, Field: "name", Value: name}
	}
	return err
}
