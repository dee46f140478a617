package repositories

import (
	"bar-finder/internal/domain"
	"bar-finder/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the VenueRepository port.
type PostgresVenueRepository struct{ DB *sql.DB }

func NewPostgresVenueRepository(db *sql.DB) *PostgresVenueRepository {
	return &PostgresVenueRepository{DB: db}
}

// Return all venues stored in the database, ordered by their source position.
func (s *PostgresVenueRepository) ListVenues(ctx context.Context) (_ []domain.Venue, err error) {
	defer obs.Time(ctx, "venues.postgres.ListVenues")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres venue repository: DB is nil")
	}

	query := `
	SELECT
		name,
		seats,
		lat,
		lon
	FROM venues
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: query venues table: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0, 64)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.Name, &v.SeatCount, &v.Coordinates.Lat, &v.Coordinates.Lon); err != nil {
			return nil, fmt.Errorf("list venues: scan row: %w", err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venues: row iteration: %w", err)
	}

	return venues, nil
}
