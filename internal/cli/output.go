package cli

import (
	"bar-finder/internal/services"
	"fmt"
	"io"
)

// PrintSummary writes the three query results, one per line, with quoted names.
func PrintSummary(w io.Writer, s services.Summary) error {
	_, err := fmt.Fprintf(w,
		"Biggest bar: %q\nSmallest bar: %q\nClosest bar: %q\n",
		s.Biggest.Name, s.Smallest.Name, s.Closest.Venue.Name,
	)
	return err
}
