package services

import (
	"bar-finder/internal/domain"
	"bar-finder/internal/geo"
	"fmt"
)

// Nearest is the result of a closest-venue query.
type Nearest struct {
	Venue          domain.Venue
	DistanceMeters float64
}

// Summary bundles the three queries the CLI and the API present together.
type Summary struct {
	Biggest  domain.Venue
	Smallest domain.Venue
	Closest  Nearest
}

// BiggestVenue returns the venue with the most seats.
// Ties resolve to the venue that appears first in the collection.
func BiggestVenue(venues []domain.Venue) (domain.Venue, error) {
	v, err := extremeBySeats(venues, func(candidate, best int) bool { return candidate > best })
	if err != nil {
		return domain.Venue{}, fmt.Errorf("biggest venue: %w", err)
	}
	return v, nil
}

// SmallestVenue returns the venue with the fewest seats.
// Ties resolve to the venue that appears first in the collection.
func SmallestVenue(venues []domain.Venue) (domain.Venue, error) {
	v, err := extremeBySeats(venues, func(candidate, best int) bool { return candidate < best })
	if err != nil {
		return domain.Venue{}, fmt.Errorf("smallest venue: %w", err)
	}
	return v, nil
}

// extremeBySeats scans once and replaces the best candidate only on a strict
// improvement, so the first of several equal extremes wins.
func extremeBySeats(venues []domain.Venue, better func(candidate, best int) bool) (domain.Venue, error) {
	if len(venues) == 0 {
		return domain.Venue{}, domain.ErrEmptyCollection
	}

	best := 0
	for i := 1; i < len(venues); i++ {
		if better(venues[i].SeatCount, venues[best].SeatCount) {
			best = i
		}
	}

	return venues[best], nil
}

// ClosestVenue returns the venue nearest to point by great-circle distance.
// A nil dist uses geo.Haversine. Ties resolve to the first venue in the collection.
func ClosestVenue(venues []domain.Venue, point domain.Coordinates, dist geo.DistanceFunc) (Nearest, error) {
	if len(venues) == 0 {
		return Nearest{}, fmt.Errorf("closest venue: %w", domain.ErrEmptyCollection)
	}

	if dist == nil {
		dist = geo.Haversine
	}

	var (
		best  Nearest
		found bool
	)
	for _, v := range venues {
		d := dist(point, v.Coordinates)
		if !found || d < best.DistanceMeters {
			best = Nearest{Venue: v, DistanceMeters: d}
			found = true
		}
	}

	return best, nil
}

// Summarize runs the biggest, smallest and closest queries over the same collection.
func Summarize(venues []domain.Venue, point domain.Coordinates, dist geo.DistanceFunc) (Summary, error) {
	biggest, err := BiggestVenue(venues)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	smallest, err := SmallestVenue(venues)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	closest, err := ClosestVenue(venues, point, dist)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	return Summary{
		Biggest:  biggest,
		Smallest: smallest,
		Closest:  closest,
	}, nil
}
