package repositories

import (
	"bar-finder/internal/domain"
	"bar-finder/internal/platform/obs"
	"context"
	"errors"
)

// File-backed implementation of the VenueRepository port.
type JSONVenueRepository struct{ Path string }

func NewJSONVenueRepository(path string) *JSONVenueRepository {
	return &JSONVenueRepository{Path: path}
}

// Return all venues stored in the JSON file, in file order.
func (r *JSONVenueRepository) ListVenues(ctx context.Context) (_ []domain.Venue, err error) {
	defer obs.Time(ctx, "venues.json.ListVenues")(&err)

	if r.Path == "" {
		return nil, errors.New("json venue repository: path is empty")
	}

	return LoadVenues(r.Path)
}
