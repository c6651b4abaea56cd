package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type NotFoundError struct {
	EntityType string
	ID         uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &NotFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
