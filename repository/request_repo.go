package repository

import (
	"context"

	"assetverse/models"
)

// RequestRepository defines the interface for asset-request operations
type RequestRepository interface {
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	// List filters by the hrEmail field; an empty hrEmail returns the
	// whole collection.
	List(ctx context.Context, hrEmail string) ([]models.Document, error)
}
