package cli

import (
	"bar-finder/internal/domain"
	"bar-finder/internal/services"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Coordinates
		wantErr bool
	}{
		{name: "longitude first", input: "37.619 55.751", want: domain.Coordinates{Lat: 55.751, Lon: 37.619}},
		{name: "extra whitespace", input: "  37.6\t 55.7 \n", want: domain.Coordinates{Lat: 55.7, Lon: 37.6}},
		{name: "negative values", input: "-74.006 40.7128", want: domain.Coordinates{Lat: 40.7128, Lon: -74.006}},
		{name: "empty", input: "", wantErr: true},
		{name: "one value", input: "37.6", wantErr: true},
		{name: "three values", input: "1 2 3", wantErr: true},
		{name: "not a number", input: "east 55.7", wantErr: true},
		{name: "comma separated", input: "37.6,55.7", wantErr: true},
		{name: "latitude out of range", input: "37.6 95", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinates(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidCoordinateInput) {
					t.Fatalf("err = %v, want ErrInvalidCoordinateInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("coordinates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("bars.json\r\n37.6 55.7"), &out)

	path, err := p.Ask(PathPrompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "bars.json" {
		t.Fatalf("path = %q, want bars.json", path)
	}

	coords, err := p.Ask(CoordinatesPrompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords != "37.6 55.7" {
		t.Fatalf("coords = %q, want %q", coords, "37.6 55.7")
	}

	if out.String() != PathPrompt+CoordinatesPrompt {
		t.Fatalf("prompts = %q", out.String())
	}

	if _, err := p.Ask(PathPrompt); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want EOF", err)
	}
}

func TestPrintSummary(t *testing.T) {
	s := services.Summary{
		Biggest:  domain.Venue{Name: "B"},
		Smallest: domain.Venue{Name: "A"},
		Closest:  services.Nearest{Venue: domain.Venue{Name: `Bar "Nord"`}},
	}

	var out bytes.Buffer
	if err := PrintSummary(&out, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Biggest bar: \"B\"\nSmallest bar: \"A\"\nClosest bar: \"Bar \\\"Nord\\\"\"\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}
