package handlers

import (
	"bar-finder/internal/api/dto"
	"bar-finder/internal/domain"
	"bar-finder/internal/geo"
	"bar-finder/internal/platform/obs"
	"bar-finder/internal/services"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// VenueHandler serves read-only queries over a collection loaded at startup.
// Venues must not be modified after the handler starts serving.
type VenueHandler struct {
	Venues   []domain.Venue
	Distance geo.DistanceFunc
}

func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res := dto.ListVenuesResponse{Venues: make([]dto.VenueResponse, 0, len(h.Venues))}
	for _, v := range h.Venues {
		res.Venues = append(res.Venues, toVenueResponse(v))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VenueHandler) Biggest(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	v, err := services.BiggestVenue(h.Venues)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toVenueResponse(v))
}

func (h *VenueHandler) Smallest(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	v, err := services.SmallestVenue(h.Venues)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toVenueResponse(v))
}

func (h *VenueHandler) Closest(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	point, err := coordinatesFromQuery(r)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	nearest, err := services.ClosestVenue(h.Venues, point, h.Distance)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toClosestResponse(nearest))
}

// Summary answers all three queries for one point.
func (h *VenueHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	point, err := coordinatesFromQuery(r)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	s, err := services.Summarize(h.Venues, point, h.Distance)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SummaryResponse{
		Biggest:  toVenueResponse(s.Biggest),
		Smallest: toVenueResponse(s.Smallest),
		Closest:  toClosestResponse(s.Closest),
	})
}

func (h *VenueHandler) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinateInput):
		writeError(w, r, http.StatusBadRequest, codeInvalidCoordinates, err.Error())
	case errors.Is(err, domain.ErrEmptyCollection):
		writeError(w, r, http.StatusNotFound, codeNoVenues, "no venues loaded")
	default:
		zap.L().Error("venue query failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, codeInternalError, "internal server error")
	}
}

// coordinatesFromQuery reads the lat and lon query parameters in degrees.
func coordinatesFromQuery(r *http.Request) (domain.Coordinates, error) {
	q := r.URL.Query()

	lat, err := parseDegrees(q.Get("lat"), "lat")
	if err != nil {
		return domain.Coordinates{}, err
	}
	lon, err := parseDegrees(q.Get("lon"), "lon")
	if err != nil {
		return domain.Coordinates{}, err
	}

	c, err := domain.NewCoordinates(lat, lon)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %w", domain.ErrInvalidCoordinateInput, err)
	}
	return c, nil
}

func parseDegrees(raw, param string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidCoordinateInput, param)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidCoordinateInput, param)
	}
	return v, nil
}

func toVenueResponse(v domain.Venue) dto.VenueResponse {
	return dto.VenueResponse{
		Name:  v.Name,
		Seats: v.SeatCount,
		Lat:   v.Coordinates.Lat,
		Lon:   v.Coordinates.Lon,
	}
}

func toClosestResponse(n services.Nearest) dto.ClosestVenueResponse {
	return dto.ClosestVenueResponse{
		VenueResponse:  toVenueResponse(n.Venue),
		DistanceMeters: n.DistanceMeters,
	}
}
