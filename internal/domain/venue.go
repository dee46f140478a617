package domain

// Venue is a single bar from the loaded dataset.
// Venues are values: once loaded they are never mutated, and a collection
// of them keeps the order of the source it was read from.
type Venue struct {
	Name        string
	SeatCount   int
	Coordinates Coordinates
}
