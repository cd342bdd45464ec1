package repositories

import (
	"context"

	"homevest-listings/internal/models"
)

type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*models.Property, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
