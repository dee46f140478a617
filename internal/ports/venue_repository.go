package ports

import (
	"bar-finder/internal/domain"
	"context"
)

// Port: a boundary for retrieving the venue collection from a data source.
type VenueRepository interface {
	// Retrieve all venues in source order.
	ListVenues(ctx context.Context) ([]domain.Venue, error)
}
