package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/skyreserve/internal/storage"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh database seeded with the five example flights.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// addFlight inserts an extra flight and returns its id.
func addFlight(t *testing.T, db *sql.DB, origin, destination string, price float64, capacity int) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO flights (origin, destination, departure_time, price, capacity) VALUES (?, ?, ?, ?, ?)`,
		origin, destination, "2026-06-01 09:00", price, capacity)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
