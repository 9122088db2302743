package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockStore wires a sqlmock connection into the store to exercise error
// paths a real sqlite database will not produce.
func mockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &SQLiteStore{db: db, logger: discardLogger()}, mock
}

func TestSaveInventoryRollsBackOnInsertFailure(t *testing.T) {
	s, mock := mockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").
		WithArgs("ada").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
	mock.ExpectExec("DELETE FROM inventory_items").
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO inventory_items").
		WithArgs("p1", "jacket", 0).
		WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	err := s.SaveInventory(context.Background(), "ada", []string{"jacket"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadInventoryQueryFailure(t *testing.T) {
	s, mock := mockStore(t)

	mock.ExpectQuery("SELECT i.item").
		WithArgs("ada").
		WillReturnError(fmt.Errorf("database is locked"))

	_, err := s.LoadInventory(context.Background(), "ada")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}
