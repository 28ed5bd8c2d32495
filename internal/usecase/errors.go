package usecase

import (
	"errors"
	"fmt"

	"admin-panel/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries per-field messages alongside ErrValidation.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(message string, fields map[string]string) error {
	return &ValidationError{Message: message, Fields: fields}
}

// validateRequest runs struct tags on req.
func validateRequest(req any, message string) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(message, errs)
	}
	return nil
}

// parseID turns a path id into a uuid. An id that cannot be a uuid cannot
// exist either, so it is reported as not found.
func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return parsed, nil
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
