package api

import (
	"bar-finder/internal/api/handlers"
	"bar-finder/internal/domain"
	"bar-finder/internal/geo"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers over the loaded venue collection and returns an http.Handler.
// This is the API composition root (handlers stay unaware of where venues came from).
func NewRouter(venues []domain.Venue, dist geo.DistanceFunc, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	venueHandler := &handlers.VenueHandler{
		Venues:   venues,
		Distance: dist,
	}

	mux.HandleFunc("/health", venueHandler.Health)
	mux.HandleFunc("/venues", venueHandler.List)
	mux.HandleFunc("/venues/biggest", venueHandler.Biggest)
	mux.HandleFunc("/venues/smallest", venueHandler.Smallest)
	mux.HandleFunc("/venues/closest", venueHandler.Closest)
	mux.HandleFunc("/venues/summary", venueHandler.Summary)

	// Request IDs are assigned before logging so every line carries one.
	return requestIDMiddleware(loggingMiddleware(logger, mux))
}
