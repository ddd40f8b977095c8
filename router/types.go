package router

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// ErrNoRoute is returned when the destination cannot be reached. It wraps
// catalogue.ErrNotFound so callers may treat both failure causes alike.
var ErrNoRoute = fmt.Errorf("no route: %w", catalogue.ErrNotFound)

// VertexKind tells the two vertices of a stop apart.
type VertexKind uint8

const (
	// Wait is standing at the stop.
	Wait VertexKind = iota
	// Board is being on a bus about to leave the stop.
	Board
)

func (k VertexKind) String() string {
	if k == Board {
		return "board"
	}
	return "wait"
}

// Vertex is a node of the routing graph.
type Vertex struct {
	Kind VertexKind
	Stop catalogue.StopID
}

// LegKind is the kind of an itinerary leg.
type LegKind uint8

const (
	LegWait LegKind = iota
	LegRide
)

// Leg is one itinerary item. Wait legs only carry Stop and Time.
type Leg struct {
	Kind LegKind
	// Stop is where the wait happens, or where the ride is boarded.
	Stop      string
	Bus       string
	SpanCount int
	// Time is in minutes.
	Time float64
}

// Route is a fastest journey between two stops.
type Route struct {
	TotalTime float64
	Legs      []Leg
}

type edgeInfo struct {
	kind LegKind
	bus  string
	stop string
	span int
}
