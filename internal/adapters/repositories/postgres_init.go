package repositories

import (
	"bar-finder/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for the venue collection.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVenuesQuery := `
	CREATE TABLE IF NOT EXISTS venues (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		seats INTEGER NOT NULL CHECK (seats >= 0),
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
		lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180)
	);
	`

	if _, err := tx.ExecContext(ctx, createVenuesQuery); err != nil {
		return fmt.Errorf("init schema: create venues table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored collection with venues, keeping their order in position.
func SeedVenues(ctx context.Context, db *sql.DB, venues []domain.Venue) error {
	if db == nil {
		return errors.New("seed venues: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed venues: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM venues;`); err != nil {
		return fmt.Errorf("seed venues: clear venues table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO venues (position, name, seats, lat, lon)
	VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return fmt.Errorf("seed venues: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range venues {
		if _, err := stmt.ExecContext(ctx, i, v.Name, v.SeatCount, v.Coordinates.Lat, v.Coordinates.Lon); err != nil {
			return fmt.Errorf("seed venues: insert position=%d name=%q: %w", i, v.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed venues: commit tx: %w", err)
	}

	return nil
}

// Populate the database with venues read from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) (int, error) {
	venues, err := LoadVenues(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed from json: %w", err)
	}

	if err := SeedVenues(ctx, db, venues); err != nil {
		return 0, fmt.Errorf("seed from json: %w", err)
	}

	return len(venues), nil
}
