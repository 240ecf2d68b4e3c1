package repository

import (
	"context"
	"regexp"
	"testing"

	"assetverse/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresAssetRepo_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id::text, payload FROM assets`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload"}).
			AddRow("id-1", []byte(`{"productName":"Laptop","quantity":5}`)).
			AddRow("id-2", []byte(`{"productName":"Chair"}`)))

	repo := NewPostgresAssetRepo(db)
	docs, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "id-1", docs[0]["_id"])
	assert.Equal(t, "Laptop", docs[0]["productName"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepo_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepo(db)
	query := regexp.QuoteMeta(`UPDATE assets SET payload = payload || $2::jsonb WHERE id::text = $1`)

	t.Run("merges fields", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("id-1", []byte(`{"quantity":4}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.Update(context.Background(), "id-1", models.Document{"quantity": 4})
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)
	})

	t.Run("unknown id", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("missing", []byte(`{"quantity":4}`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), "missing", models.Document{"quantity": 4})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepo(db)
	query := regexp.QuoteMeta(`DELETE FROM assets WHERE id::text = $1`)

	t.Run("deletes", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("id-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.Delete(context.Background(), "id-1")
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.DeletedCount)
	})

	t.Run("unknown id", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
