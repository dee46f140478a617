package api

import (
	"bar-finder/internal/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRouterAssignsRequestIDAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	venues := []domain.Venue{
		{Name: "A", SeatCount: 10, Coordinates: domain.Coordinates{Lat: 55.75, Lon: 37.62}},
	}
	router := NewRouter(venues, nil, zap.New(core))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/biggest", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	id := rec.Header().Get(requestIDHeader)
	if id == "" {
		t.Fatal("expected a generated request id header")
	}

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["req_id"] != id {
		t.Fatalf("logged req_id = %v, want %s", fields["req_id"], id)
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("logged status = %v, want 200", fields["status"])
	}
	if fields["path"] != "/venues/biggest" {
		t.Fatalf("logged path = %v", fields["path"])
	}
}

func TestRouterKeepsCallerRequestID(t *testing.T) {
	router := NewRouter(nil, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "caller-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "caller-id" {
		t.Fatalf("request id = %q, want caller-id", got)
	}
}

func TestRouterUnknownPath(t *testing.T) {
	router := NewRouter(nil, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
