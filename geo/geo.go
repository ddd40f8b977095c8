// Package geo holds geographic coordinates and great-circle distance helpers.
package geo

import (
	"math"
)

// EarthRadiusMeters is the mean Earth radius used for all great-circle computations.
const EarthRadiusMeters = 6371000.0

// Coordinates is a point on the Earth's surface in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Lng float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
}

// Distance returns the great-circle distance in meters between two points.
// Identical points are exactly 0 apart.
func Distance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}
	return HaversineKM(from.Lat, from.Lng, to.Lat, to.Lng) * 1000
}

// HaversineKM returns the haversine distance in kilometers.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = EarthRadiusMeters / 1000
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
