package repository

import (
	"context"
	"database/sql"
	"time"

	"assetverse/models"
)

type PostgresRequestRepo struct {
	DB *sql.DB
}

func NewPostgresRequestRepo(db *sql.DB) *PostgresRequestRepo {
	return &PostgresRequestRepo{DB: db}
}

func (r *PostgresRequestRepo) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	hrEmail, _ := doc[models.FieldHREmail].(string)
	status, _ := doc[models.FieldRequestStatus].(string)
	requestDate, ok := doc[models.FieldRequestDate].(time.Time)
	if !ok {
		requestDate = time.Now().UTC()
	}

	payload, err := marshalPayload(doc)
	if err != nil {
		return nil, err
	}

	var id string
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO requests (hr_email, request_status, request_date, payload)
		 VALUES ($1, $2, $3, $4::jsonb) RETURNING id::text`,
		hrEmail, status, requestDate, payload,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: id}, nil
}

func (r *PostgresRequestRepo) List(ctx context.Context, hrEmail string) ([]models.Document, error) {
	var rows *sql.Rows
	var err error

	if hrEmail == "" {
		rows, err = r.DB.QueryContext(ctx,
			`SELECT id::text, payload FROM requests ORDER BY request_date DESC`)
	} else {
		rows, err = r.DB.QueryContext(ctx,
			`SELECT id::text, payload FROM requests WHERE hr_email = $1 ORDER BY request_date DESC`,
			hrEmail)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocuments(rows)
}
