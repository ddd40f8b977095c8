package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/mmap"
)

// GTFSIndex stores the GTFS tables needed to build a network
type GTFSIndex struct {
	stops       []StopRecord        // stops.txt order
	stopIndex   map[string]int      // stop_id -> position in stops
	routeNames  map[string]string   // route_id -> display name
	routeOrder  []string            // routes.txt order
	tripToRoute map[string]string   // trip_id -> route_id
	tripStopSeq map[string][]string // trip_id -> ordered stop_ids
}

// NewGTFSIndex creates a new empty GTFS index
func NewGTFSIndex() *GTFSIndex {
	return &GTFSIndex{
		stopIndex:   map[string]int{},
		routeNames:  map[string]string{},
		tripToRoute: map[string]string{},
		tripStopSeq: map[string][]string{},
	}
}

// LoadFile memory-maps a local GTFS zip and indexes it
func LoadFile(path string) (*GTFSIndex, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gtfs feed: %w", err)
	}
	defer r.Close()
	return NewGTFSIndexFromReader(r, int64(r.Len()))
}

// NewGTFSIndexFromBytes indexes a GTFS zip held in memory
func NewGTFSIndexFromBytes(data []byte) (*GTFSIndex, error) {
	return NewGTFSIndexFromReader(bytes.NewReader(data), int64(len(data)))
}

// NewGTFSIndexFromReader indexes a GTFS zip of the given size
func NewGTFSIndexFromReader(r io.ReaderAt, size int64) (*GTFSIndex, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read gtfs zip: %w", err)
	}
	g := NewGTFSIndex()
	if err := g.loadFromZip(zr); err != nil {
		return nil, err
	}
	return g, nil
}

// Stops returns the stops in file order
func (g *GTFSIndex) Stops() []StopRecord { return g.stops }

// GetStop returns the stop with the given stop_id
func (g *GTFSIndex) GetStop(stopID string) (StopRecord, bool) {
	i, ok := g.stopIndex[stopID]
	if !ok {
		return StopRecord{}, false
	}
	return g.stops[i], true
}

// GetRouteName returns the display name of a route
func (g *GTFSIndex) GetRouteName(routeID string) string { return g.routeNames[routeID] }

// GetAllRoutes returns route ids in file order
func (g *GTFSIndex) GetAllRoutes() []string { return g.routeOrder }

// GetRouteIDForTrip returns the route of a trip
func (g *GTFSIndex) GetRouteIDForTrip(tripID string) string { return g.tripToRoute[tripID] }

// GetTripStopSeq returns the ordered stop ids of a trip
func (g *GTFSIndex) GetTripStopSeq(tripID string) []string { return g.tripStopSeq[tripID] }

// LongestTrips maps each route to its trip with the most stops. Ties go to the
// lexicographically smallest trip id.
func (g *GTFSIndex) LongestTrips() map[string]string {
	tripIDs := make([]string, 0, len(g.tripStopSeq))
	for id := range g.tripStopSeq {
		tripIDs = append(tripIDs, id)
	}
	sort.Strings(tripIDs)

	longest := map[string]string{}
	for _, tripID := range tripIDs {
		routeID, ok := g.tripToRoute[tripID]
		if !ok {
			continue
		}
		best, seen := longest[routeID]
		if !seen || len(g.tripStopSeq[tripID]) > len(g.tripStopSeq[best]) {
			longest[routeID] = tripID
		}
	}
	return longest
}
