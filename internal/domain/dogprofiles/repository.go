package dogprofiles

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven todos los repos cuando el id no existe.
var ErrNotFound = errors.New("dog profile not found")

type Repository interface {
	Create(ctx context.Context, p DogProfile) error
	Update(ctx context.Context, p DogProfile) error
	GetByID(ctx context.Context, id string) (DogProfile, error)
	// ListByOwner ordena por created_at asc.
	ListByOwner(ctx context.Context, ownerUserID string) ([]DogProfile, error)
}
