// Package storage opens the embedded SQLite database and owns its schema.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens or creates the SQLite database at the given path, creates the
// schema if needed and seeds the example flights on first run. Safe to call
// repeatedly: schema creation is idempotent and seeding only happens while
// the flights table is empty.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := seedFlights(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed flights: %w", err)
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS flights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		price REAL NOT NULL,
		capacity INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reference TEXT NOT NULL UNIQUE,
		flight_id INTEGER NOT NULL,
		passenger_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Confirmed',
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		FOREIGN KEY (flight_id) REFERENCES flights (id)
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_flight_status ON bookings(flight_id, status);
	CREATE INDEX IF NOT EXISTS idx_bookings_passenger ON bookings(passenger_name);
	`

	_, err := db.Exec(schema)
	return err
}

// seedFlights inserts the fixed example flights when the flights table is
// empty. Repeated calls never duplicate seed data.
func seedFlights(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM flights`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		origin        string
		destination   string
		departureTime string
		price         float64
		capacity      int
	}{
		{"New York", "London", "2026-05-10 10:00", 500.0, 150},
		{"Paris", "Tokyo", "2026-05-11 14:00", 850.0, 200},
		{"Dubai", "New York", "2026-05-12 08:30", 700.0, 180},
		{"Berlin", "Rome", "2026-05-13 19:00", 150.0, 100},
		{"Singapore", "Sydney", "2026-05-14 22:00", 450.0, 160},
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, f := range seed {
		if _, err := tx.Exec(`INSERT INTO flights (origin, destination, departure_time, price, capacity) VALUES (?, ?, ?, ?, ?)`,
			f.origin, f.destination, f.departureTime, f.price, f.capacity); err != nil {
			return err
		}
	}

	return tx.Commit()
}
