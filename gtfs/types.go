package gtfs

import "errors"

// ErrMissingFile is returned when the feed lacks one of the required CSV files
var ErrMissingFile = errors.New("gtfs: missing required file")

// requiredFiles are consumed in this order
var requiredFiles = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// StopRecord is one row of stops.txt
type StopRecord struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Summary counts what Populate added to the catalogue
type Summary struct {
	Stops     int
	Buses     int
	Distances int
	// Skipped counts stops and routes dropped for duplicate names.
	Skipped int
}
