package geo

import (
	"bar-finder/internal/domain"
	"fmt"
	"math"
	"strings"
)

// EarthRadiusMeters is the mean Earth radius used for all distance calculations.
const EarthRadiusMeters = 6372795.0

// DistanceFunc returns the great-circle distance in meters between two points.
type DistanceFunc func(a, b domain.Coordinates) float64

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// CentralAngle returns the angle in radians subtended at the sphere's center
// by a and b, using the spherical law of cosines.
//
// Rounding can push the acos argument slightly outside [-1, 1] for near-identical
// or near-antipodal points, so it is clamped first.
func CentralAngle(a, b domain.Coordinates) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLon := radians(b.Lon - a.Lon)

	cos := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos)
}

// LawOfCosines computes the great-circle distance from the central angle.
func LawOfCosines(a, b domain.Coordinates) float64 {
	return CentralAngle(a, b) * EarthRadiusMeters
}

// Haversine computes the great-circle distance with the haversine formula.
// Identical points yield exactly zero.
func Haversine(a, b domain.Coordinates) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	h = math.Min(1, h)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)) * EarthRadiusMeters
}

// ByName resolves a configured formula name. An empty name selects Haversine.
func ByName(name string) (DistanceFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "haversine":
		return Haversine, nil
	case "cosines", "law_of_cosines":
		return LawOfCosines, nil
	default:
		return nil, fmt.Errorf("unknown distance formula %q", name)
	}
}
