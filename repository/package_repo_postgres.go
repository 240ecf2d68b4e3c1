package repository

import (
	"context"
	"database/sql"

	"assetverse/models"
)

type PostgresPackageRepo struct {
	DB *sql.DB
}

func NewPostgresPackageRepo(db *sql.DB) *PostgresPackageRepo {
	return &PostgresPackageRepo{DB: db}
}

func (r *PostgresPackageRepo) List(ctx context.Context) ([]models.Document, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id::text, payload FROM packages`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocuments(rows)
}
