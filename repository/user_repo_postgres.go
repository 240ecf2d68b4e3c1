package repository

import (
	"context"
	"database/sql"
	"errors"

	"assetverse/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	var id string
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO users (email, name, role) VALUES ($1, $2, $3) RETURNING id::text`,
		user.Email, user.Name, user.Role,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: id}, nil
}

func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	var id string

	err := r.DB.QueryRowContext(ctx,
		`SELECT id::text, email, name, role, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&id, &user.Email, &user.Name, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *PostgresUserRepo) UpdateName(ctx context.Context, email, name string) (*models.UpdateResult, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET name = $1 WHERE email = $2`,
		name, email,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}
