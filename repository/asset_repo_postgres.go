package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"assetverse/models"
)

type PostgresAssetRepo struct {
	DB *sql.DB
}

func NewPostgresAssetRepo(db *sql.DB) *PostgresAssetRepo {
	return &PostgresAssetRepo{DB: db}
}

func (r *PostgresAssetRepo) List(ctx context.Context) ([]models.Document, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id::text, payload FROM assets`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (r *PostgresAssetRepo) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	payload, err := marshalPayload(doc)
	if err != nil {
		return nil, err
	}

	var id string
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO assets (payload) VALUES ($1::jsonb) RETURNING id::text`,
		payload,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: id}, nil
}

func (r *PostgresAssetRepo) Update(ctx context.Context, id string, fields models.Document) (*models.UpdateResult, error) {
	delete(fields, "_id")
	payload, err := marshalPayload(fields)
	if err != nil {
		return nil, err
	}

	// jsonb || gives the same field-level merge semantics as $set.
	res, err := r.DB.ExecContext(ctx,
		`UPDATE assets SET payload = payload || $2::jsonb WHERE id::text = $1`,
		id, payload,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &models.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}

func (r *PostgresAssetRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM assets WHERE id::text = $1`, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &models.DeleteResult{DeletedCount: affected}, nil
}

// scanDocuments reads (id, payload) rows back into documents, restoring the
// row id under the _id key the Mongo backend uses.
func scanDocuments(rows *sql.Rows) ([]models.Document, error) {
	out := []models.Document{}
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}

		doc := models.Document{}
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		doc["_id"] = id
		out = append(out, doc)
	}
	return out, rows.Err()
}

func marshalPayload(doc models.Document) ([]byte, error) {
	delete(doc, "_id")
	return json.Marshal(doc)
}
