package repository

import (
	"context"

	"assetverse/models"
)

// AssetRepository defines the interface for asset operations
type AssetRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	// Update applies a field-level merge of fields onto the asset with the
	// given id. Returns ErrNotFound when the id matches nothing.
	Update(ctx context.Context, id string, fields models.Document) (*models.UpdateResult, error)
	// Delete returns ErrNotFound when the id matches nothing.
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}
