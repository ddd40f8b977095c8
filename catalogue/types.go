package catalogue

import (
	"errors"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

var (
	// ErrNotFound is returned for unknown stop or bus names.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEntity is returned when a stop or bus name is registered twice.
	ErrDuplicateEntity = errors.New("duplicate entity")
	// ErrInvalidName is returned for empty stop or bus names.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidDistance is returned for negative road distances.
	ErrInvalidDistance = errors.New("invalid distance")
)

// StopID is the stable handle of a stop, assigned in insertion order starting at 0.
type StopID int

// Stop is a named point of the network.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route over registered stops.
//
// For a roundtrip bus Stops is the full closed loop. For a linear bus Stops is the
// outward leg only; the return leg is the same sequence reversed.
type Bus struct {
	Name      string
	Stops     []*Stop
	Roundtrip bool
}

// BusStats are the aggregate statistics of one bus route.
type BusStats struct {
	StopCount       int
	UniqueStopCount int
	// RoadLength is the route length in meters along declared road distances.
	RoadLength float64
	// GeoLength is the great-circle length in meters of the same traversal.
	GeoLength float64
	// Curvature is RoadLength / GeoLength. It is NaN or +Inf when GeoLength is 0.
	Curvature float64
}

type stopPair struct {
	from, to StopID
}
