package catalogue

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// newLineCatalogue builds A(0,0), B(0,1), C(0,2) with A->B and B->C at 1000 m and a
// linear bus "1" over A, B, C.
func newLineCatalogue(t *testing.T) *TransportCatalogue {
	t.Helper()
	c := New()
	for i, name := range []string{"A", "B", "C"} {
		_, err := c.AddStop(name, geo.Coordinates{Lat: 0, Lng: float64(i)})
		require.NoError(t, err)
	}
	require.NoError(t, c.AddDistance("A", "B", 1000))
	require.NoError(t, c.AddDistance("B", "C", 1000))
	_, err := c.AddBus("1", []string{"A", "B", "C"}, false)
	require.NoError(t, err)
	return c
}

func TestAddStop_AssignsSequentialIDs(t *testing.T) {
	c := New()
	a, err := c.AddStop("A", geo.Coordinates{})
	require.NoError(t, err)
	b, err := c.AddStop("B", geo.Coordinates{Lat: 1})
	require.NoError(t, err)

	assert.Equal(t, StopID(0), a.ID)
	assert.Equal(t, StopID(1), b.ID)
	assert.Equal(t, 2, c.StopCount())
	assert.Equal(t, []*Stop{a, b}, c.Stops())
}

func TestAddStop_Errors(t *testing.T) {
	c := New()
	_, err := c.AddStop("A", geo.Coordinates{})
	require.NoError(t, err)

	_, err = c.AddStop("A", geo.Coordinates{Lat: 5})
	assert.ErrorIs(t, err, ErrDuplicateEntity)

	_, err = c.AddStop("", geo.Coordinates{})
	assert.ErrorIs(t, err, ErrInvalidName)

	stop, err := c.FindStop("A")
	require.NoError(t, err)
	assert.Equal(t, geo.Coordinates{}, stop.Coordinates, "duplicate must not shadow the first stop")
}

func TestAddBus_DropsUnknownStops(t *testing.T) {
	c := New()
	_, _ = c.AddStop("A", geo.Coordinates{})
	_, _ = c.AddStop("B", geo.Coordinates{Lat: 1})

	bus, err := c.AddBus("7", []string{"A", "Nowhere", "B"}, true)
	require.NoError(t, err)
	require.Len(t, bus.Stops, 2)
	assert.Equal(t, "A", bus.Stops[0].Name)
	assert.Equal(t, "B", bus.Stops[1].Name)

	_, err = c.AddBus("7", []string{"A"}, true)
	assert.ErrorIs(t, err, ErrDuplicateEntity)

	_, err = c.AddBus("", []string{"A"}, true)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestFind_NotFound(t *testing.T) {
	c := newLineCatalogue(t)

	_, err := c.FindStop("Z")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.FindBus("999")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.BusesServing("Z")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.BusStatistics("999")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, c.AddDistance("A", "Z", 10), ErrNotFound)
}

func TestBusesServing_SortedRegardlessOfInsertion(t *testing.T) {
	c := New()
	_, _ = c.AddStop("A", geo.Coordinates{})
	_, _ = c.AddStop("B", geo.Coordinates{Lat: 1})
	_, _ = c.AddStop("Lonely", geo.Coordinates{Lat: 2})

	for _, name := range []string{"750", "256", "828", "14"} {
		_, err := c.AddBus(name, []string{"A", "B", "A"}, true)
		require.NoError(t, err)
	}

	buses, err := c.BusesServing("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"14", "256", "750", "828"}, buses)

	buses, err = c.BusesServing("Lonely")
	require.NoError(t, err)
	assert.NotNil(t, buses)
	assert.Empty(t, buses)

	assert.Equal(t, []string{"14", "256", "750", "828"}, c.BusNames())
}

func TestBusesServing_ReturnsCopy(t *testing.T) {
	c := newLineCatalogue(t)
	buses, err := c.BusesServing("A")
	require.NoError(t, err)
	buses[0] = "mutated"

	again, err := c.BusesServing("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, again)
}

func TestDistance_Fallback(t *testing.T) {
	c := New()
	a, _ := c.AddStop("A", geo.Coordinates{})
	b, _ := c.AddStop("B", geo.Coordinates{Lat: 1})
	x, _ := c.AddStop("X", geo.Coordinates{Lat: 2})

	require.NoError(t, c.AddDistance("A", "B", 1200))

	d, ok := c.Distance(a, b)
	assert.True(t, ok)
	assert.Equal(t, 1200, d)

	d, ok = c.Distance(b, a)
	assert.True(t, ok)
	assert.Equal(t, 1200, d, "reverse falls back to declared direction")

	require.NoError(t, c.AddDistance("B", "A", 900))
	d, _ = c.Distance(b, a)
	assert.Equal(t, 900, d, "explicit reverse wins")
	d, _ = c.Distance(a, b)
	assert.Equal(t, 1200, d)

	require.NoError(t, c.AddDistance("A", "B", 1300))
	d, _ = c.Distance(a, b)
	assert.Equal(t, 1300, d, "redeclaring overwrites")

	_, ok = c.Distance(a, x)
	assert.False(t, ok)

	assert.ErrorIs(t, c.AddDistance("A", "X", -1), ErrInvalidDistance)
}

func TestBusStatistics_LinearWithFallback(t *testing.T) {
	c := newLineCatalogue(t)

	stats, err := c.BusStatistics("1")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.StopCount)
	assert.Equal(t, 3, stats.UniqueStopCount)
	assert.Equal(t, 4000.0, stats.RoadLength)
	wantGeo := 4 * geo.Distance(geo.Coordinates{}, geo.Coordinates{Lng: 1})
	assert.InDelta(t, wantGeo, stats.GeoLength, 1e-6)
	assert.InDelta(t, 4000.0/wantGeo, stats.Curvature, 1e-12)
}

func TestBusStatistics_AsymmetricDistances(t *testing.T) {
	c := newLineCatalogue(t)
	require.NoError(t, c.AddDistance("C", "B", 1500))
	require.NoError(t, c.AddDistance("B", "A", 500))

	stats, err := c.BusStatistics("1")
	require.NoError(t, err)
	assert.Equal(t, 2000.0+2000.0, stats.RoadLength)
}

func TestBusStatistics_Roundtrip(t *testing.T) {
	c := New()
	_, _ = c.AddStop("A", geo.Coordinates{Lat: 55.611087, Lng: 37.20829})
	_, _ = c.AddStop("B", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	_, _ = c.AddStop("C", geo.Coordinates{Lat: 55.632761, Lng: 37.333324})
	require.NoError(t, c.AddDistance("A", "B", 3900))
	require.NoError(t, c.AddDistance("B", "C", 9900))
	require.NoError(t, c.AddDistance("C", "A", 7500))
	_, err := c.AddBus("loop", []string{"A", "B", "C", "A"}, true)
	require.NoError(t, err)

	stats, err := c.BusStatistics("loop")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.StopCount)
	assert.Equal(t, 3, stats.UniqueStopCount)
	assert.Equal(t, 21300.0, stats.RoadLength)
	assert.Greater(t, stats.Curvature, 1.0)
}

func TestBusStatistics_ZeroGeoLengthIsNonFinite(t *testing.T) {
	c := New()
	_, _ = c.AddStop("A", geo.Coordinates{Lat: 1, Lng: 1})
	_, err := c.AddBus("solo", []string{"A"}, false)
	require.NoError(t, err)

	stats, err := c.BusStatistics("solo")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StopCount)
	assert.True(t, math.IsNaN(stats.Curvature))
}

func TestBusStatistics_EmptyBus(t *testing.T) {
	c := New()
	_, err := c.AddBus("ghost", []string{"Nowhere"}, false)
	require.NoError(t, err)

	_, err = c.BusStatistics("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoadDistance_Reverse(t *testing.T) {
	c := newLineCatalogue(t)
	require.NoError(t, c.AddDistance("C", "B", 700))
	bus, err := c.FindBus("1")
	require.NoError(t, err)

	assert.Equal(t, 2000, c.RoadDistance(bus.Stops, 0, 2, false))
	assert.Equal(t, 1700, c.RoadDistance(bus.Stops, 0, 2, true))
	assert.Equal(t, 700, c.RoadDistance(bus.Stops, 1, 2, true))
	assert.Equal(t, 0, c.RoadDistance(bus.Stops, 1, 1, false))
}
