package catalogue

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// BusStatistics computes stop counts, road and great-circle lengths and curvature
// for a bus. Linear buses are measured out and back. A hop without any declared
// distance contributes 0 to the road length.
//
// A bus whose stops were all dropped at registration has no route and reports ErrNotFound.
func (c *TransportCatalogue) BusStatistics(busName string) (BusStats, error) {
	bus, err := c.FindBus(busName)
	if err != nil {
		return BusStats{}, err
	}
	if len(bus.Stops) == 0 {
		return BusStats{}, fmt.Errorf("bus %q has no stops: %w", busName, ErrNotFound)
	}

	stats := BusStats{UniqueStopCount: uniqueStops(bus.Stops)}
	if bus.Roundtrip {
		stats.StopCount = len(bus.Stops)
	} else {
		stats.StopCount = 2*len(bus.Stops) - 1
	}

	road, geoLen := c.measure(bus.Stops, false)
	if !bus.Roundtrip {
		backRoad, backGeo := c.measure(bus.Stops, true)
		road += backRoad
		geoLen += backGeo
	}
	stats.RoadLength = float64(road)
	stats.GeoLength = geoLen
	stats.Curvature = stats.RoadLength / stats.GeoLength
	return stats, nil
}

// RoadDistance sums the road distance along stops[i..j] hop by hop. With reverse set
// the hops are walked from stops[j] down to stops[i], each looked up in that direction.
func (c *TransportCatalogue) RoadDistance(stops []*Stop, i, j int, reverse bool) int {
	total := 0
	for k := i; k < j; k++ {
		from, to := stops[k], stops[k+1]
		if reverse {
			from, to = to, from
		}
		if d, ok := c.Distance(from, to); ok {
			total += d
		}
	}
	return total
}

func (c *TransportCatalogue) measure(stops []*Stop, reverse bool) (int, float64) {
	road := c.RoadDistance(stops, 0, len(stops)-1, reverse)
	geoLen := 0.0
	for k := 1; k < len(stops); k++ {
		geoLen += geo.Distance(stops[k-1].Coordinates, stops[k].Coordinates)
	}
	return road, geoLen
}

func uniqueStops(stops []*Stop) int {
	seen := make(map[StopID]struct{}, len(stops))
	for _, s := range stops {
		seen[s.ID] = struct{}{}
	}
	return len(seen)
}
