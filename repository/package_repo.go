package repository

import (
	"context"

	"assetverse/models"
)

// PackageRepository defines the interface for package operations
type PackageRepository interface {
	List(ctx context.Context) ([]models.Document, error)
}
