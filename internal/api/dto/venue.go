package dto

type VenueResponse struct {
	Name  string  `json:"name"`
	Seats int     `json:"seats"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type ListVenuesResponse struct {
	Venues []VenueResponse `json:"venues"`
}

type ClosestVenueResponse struct {
	VenueResponse
	DistanceMeters float64 `json:"distance_meters"`
}

type SummaryResponse struct {
	Biggest  VenueResponse        `json:"biggest"`
	Smallest VenueResponse        `json:"smallest"`
	Closest  ClosestVenueResponse `json:"closest"`
}
