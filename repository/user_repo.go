package repository

import (
	"context"

	"assetverse/models"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *models.User) (*models.InsertResult, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateName sets the name attribute only. Matching zero documents is
	// not an error.
	UpdateName(ctx context.Context, email, name string) (*models.UpdateResult, error)
}
