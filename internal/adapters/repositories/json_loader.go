package repositories

import (
	"bar-finder/internal/domain"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// venueRecord accepts two shapes. The compact one is
// {"name": ..., "seats": ..., "coords": [lat, lon]}; the Moscow open-data export
// nests the same facts under "Cells" with GeoJSON coordinates, longitude first.
type venueRecord struct {
	Name   *string        `json:"name"`
	Seats  *int           `json:"seats"`
	Coords []float64      `json:"coords"`
	Cells  *openDataCells `json:"Cells"`
}

type openDataCells struct {
	Name       *string `json:"Name"`
	SeatsCount *int    `json:"SeatsCount"`
	GeoData    *struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geoData"`
}

// LoadVenues reads the venue collection from a JSON file.
//
// Only the first JSON value in the file is decoded; it must be an array of records.
// A missing or unreadable file yields ErrDataNotFound, anything that does not
// decode into venues yields an error matching ErrDataFormat.
func LoadVenues(path string) ([]domain.Venue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load venues: open %q: %w: %w", path, domain.ErrDataNotFound, err)
	}
	defer f.Close()

	venues, err := DecodeVenues(f)
	if err != nil {
		return nil, fmt.Errorf("load venues %q: %w", path, err)
	}

	return venues, nil
}

// DecodeVenues decodes the first JSON value from r into a venue collection.
func DecodeVenues(r io.Reader) ([]domain.Venue, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode venues: %w: %w", domain.ErrDataFormat, err)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		return nil, fmt.Errorf("decode venues: %w: top-level value must be an array", domain.ErrDataFormat)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode venues: %w: %w", domain.ErrDataFormat, err)
	}

	venues := make([]domain.Venue, 0, len(records))
	for i, rec := range records {
		v, err := parseVenue(i, rec)
		if err != nil {
			return nil, fmt.Errorf("decode venues: %w", err)
		}
		venues = append(venues, v)
	}

	return venues, nil
}

func parseVenue(index int, raw json.RawMessage) (domain.Venue, error) {
	var rec venueRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Venue{}, &domain.FormatError{Index: index, Field: typeErrorField(err), Err: err}
	}

	name, seats, coords := rec.Name, rec.Seats, domain.Coordinates{}
	if rec.Cells != nil {
		name, seats = rec.Cells.Name, rec.Cells.SeatsCount
		if rec.Cells.GeoData == nil {
			return domain.Venue{}, missingField(index, "geoData")
		}
		pair := rec.Cells.GeoData.Coordinates
		if len(pair) != 2 {
			return domain.Venue{}, badPair(index, "geoData.coordinates", pair)
		}
		coords = domain.Coordinates{Lat: pair[1], Lon: pair[0]}
	} else {
		if len(rec.Coords) != 2 {
			return domain.Venue{}, badPair(index, "coords", rec.Coords)
		}
		coords = domain.Coordinates{Lat: rec.Coords[0], Lon: rec.Coords[1]}
	}

	if name == nil {
		return domain.Venue{}, missingField(index, "name")
	}
	if seats == nil {
		return domain.Venue{}, missingField(index, "seats")
	}
	if *seats < 0 {
		return domain.Venue{}, &domain.FormatError{
			Index: index,
			Field: "seats",
			Err:   fmt.Errorf("seat count must be non-negative, got %d", *seats),
		}
	}
	if err := coords.Validate(); err != nil {
		return domain.Venue{}, &domain.FormatError{Index: index, Field: "coords", Err: err}
	}

	return domain.Venue{
		Name:        strings.TrimSpace(*name),
		SeatCount:   *seats,
		Coordinates: coords,
	}, nil
}

func missingField(index int, field string) error {
	return &domain.FormatError{Index: index, Field: field, Err: errors.New("field is required")}
}

func badPair(index int, field string, pair []float64) error {
	if pair == nil {
		return missingField(index, field)
	}
	return &domain.FormatError{
		Index: index,
		Field: field,
		Err:   fmt.Errorf("expected a coordinate pair, got %d values", len(pair)),
	}
}

func typeErrorField(err error) string {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return te.Field
	}
	return ""
}
