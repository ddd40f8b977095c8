package gtfs

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

// Populate adds the indexed network to cat: stops, then road distances, then buses.
// Stops and routes whose name is already taken are logged and skipped.
func (g *GTFSIndex) Populate(cat *catalogue.TransportCatalogue) (Summary, error) {
	var summary Summary
	names := make(map[string]string, len(g.stops)) // stop_id -> catalogue stop name
	for _, s := range g.stops {
		_, err := cat.AddStop(s.Name, geo.Coordinates{Lat: s.Lat, Lng: s.Lon})
		switch {
		case err == nil:
			summary.Stops++
		case errors.Is(err, catalogue.ErrDuplicateEntity):
			internal.Debugf("gtfs: stop %s merged into existing stop %q", s.ID, s.Name)
			summary.Skipped++
		default:
			return summary, fmt.Errorf("gtfs stop %s: %w", s.ID, err)
		}
		names[s.ID] = s.Name
	}

	type plannedBus struct {
		name      string
		stops     []string
		roundtrip bool
	}
	var buses []plannedBus
	trips := g.LongestTrips()
	for _, routeID := range g.routeOrder {
		tripID, ok := trips[routeID]
		if !ok {
			continue
		}
		stops := resolveTrip(g.tripStopSeq[tripID], names)
		if len(stops) == 0 {
			continue
		}
		added, err := fillDistances(cat, stops)
		if err != nil {
			return summary, fmt.Errorf("gtfs route %s: %w", routeID, err)
		}
		summary.Distances += added
		buses = append(buses, plannedBus{
			name:      g.routeNames[routeID],
			stops:     stops,
			roundtrip: len(stops) > 1 && stops[0] == stops[len(stops)-1],
		})
	}

	for _, b := range buses {
		_, err := cat.AddBus(b.name, b.stops, b.roundtrip)
		switch {
		case err == nil:
			summary.Buses++
		case errors.Is(err, catalogue.ErrDuplicateEntity):
			log.Printf("gtfs: skipping route with duplicate bus name %q", b.name)
			summary.Skipped++
		default:
			return summary, err
		}
	}
	return summary, nil
}

// resolveTrip maps stop ids to catalogue names, dropping unknown stops and
// collapsing consecutive repeats left by merged platforms.
func resolveTrip(stopIDs []string, names map[string]string) []string {
	out := make([]string, 0, len(stopIDs))
	for _, id := range stopIDs {
		name, ok := names[id]
		if !ok {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == name {
			continue
		}
		out = append(out, name)
	}
	return out
}

// fillDistances declares the great-circle length of every hop that has no road
// distance in either direction yet.
func fillDistances(cat *catalogue.TransportCatalogue, stops []string) (int, error) {
	added := 0
	for k := 1; k < len(stops); k++ {
		from, err := cat.FindStop(stops[k-1])
		if err != nil {
			return added, err
		}
		to, err := cat.FindStop(stops[k])
		if err != nil {
			return added, err
		}
		if _, ok := cat.Distance(from, to); ok {
			continue
		}
		meters := int(math.Round(geo.Distance(from.Coordinates, to.Coordinates)))
		if err := cat.AddDistance(from.Name, to.Name, meters); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
