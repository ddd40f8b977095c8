package gtfs

import (
	"archive/zip"
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

var sampleFeed = map[string]string{
	"stops.txt": "\ufeffstop_id,stop_name,stop_lat,stop_lon\n" +
		"S1,Central,42.6977,23.3219\n" +
		"S2,Market,42.7000,23.3300\n" +
		"S3,Park,42.7050,23.3400\n" +
		"S1b,Central,42.6978,23.3220\n" +
		"BAD,Broken,north,23\n",
	"routes.txt": "route_id,route_short_name,route_long_name,route_type\n" +
		"R1,94,Central - Park,3\n" +
		"R2,,Ring,3\n" +
		"R3,94,Duplicate name,3\n" +
		"R4,,,3\n",
	"trips.txt": "route_id,service_id,trip_id\n" +
		"R1,WK,T1\n" +
		"R1,WK,T1short\n" +
		"R2,WK,T2\n" +
		"R3,WK,T3\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"T1,08:00:00,08:00:00,S2,2\n" +
		"T1,08:05:00,08:05:00,S3,3\n" +
		"T1,07:55:00,07:55:00,S1,1\n" +
		"T1short,08:00:00,08:00:00,S1,1\n" +
		"T1short,08:05:00,08:05:00,S2,2\n" +
		"T2,09:00:00,09:00:00,S1,1\n" +
		"T2,09:01:00,09:01:00,S1b,2\n" +
		"T2,09:05:00,09:05:00,S3,3\n" +
		"T2,09:10:00,09:10:00,S1,4\n" +
		"T3,10:00:00,10:00:00,S3,1\n" +
		"T3,10:05:00,10:05:00,S2,2\n",
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestNewGTFSIndexFromBytes(t *testing.T) {
	g, err := NewGTFSIndexFromBytes(buildZip(t, sampleFeed))
	require.NoError(t, err)

	assert.Len(t, g.Stops(), 4, "row with bad coordinates is skipped")
	stop, ok := g.GetStop("S2")
	require.True(t, ok)
	assert.Equal(t, "Market", stop.Name)
	assert.InDelta(t, 23.33, stop.Lon, 1e-9)

	assert.Equal(t, []string{"R1", "R2", "R3", "R4"}, g.GetAllRoutes())
	assert.Equal(t, "94", g.GetRouteName("R1"))
	assert.Equal(t, "Ring", g.GetRouteName("R2"), "falls back to the long name")
	assert.Equal(t, "R4", g.GetRouteName("R4"), "falls back to the route id")
	assert.Equal(t, "R1", g.GetRouteIDForTrip("T1short"))
	assert.Equal(t, []string{"S1", "S2", "S3"}, g.GetTripStopSeq("T1"), "sorted by stop_sequence")

	longest := g.LongestTrips()
	assert.Equal(t, "T1", longest["R1"])
	assert.NotContains(t, longest, "R4")
}

func TestNewGTFSIndex_MissingFile(t *testing.T) {
	files := map[string]string{}
	for k, v := range sampleFeed {
		if k != "trips.txt" {
			files[k] = v
		}
	}
	_, err := NewGTFSIndexFromBytes(buildZip(t, files))
	assert.ErrorIs(t, err, ErrMissingFile)

	_, err = NewGTFSIndexFromBytes([]byte("not a zip"))
	assert.Error(t, err)
}

func TestPopulate(t *testing.T) {
	g, err := NewGTFSIndexFromBytes(buildZip(t, sampleFeed))
	require.NoError(t, err)

	cat := catalogue.New()
	summary, err := g.Populate(cat)
	require.NoError(t, err)
	assert.Equal(t, Summary{Stops: 3, Buses: 2, Distances: 3, Skipped: 2}, summary)

	line, err := cat.FindBus("94")
	require.NoError(t, err)
	assert.False(t, line.Roundtrip)
	require.Len(t, line.Stops, 3)
	assert.Equal(t, "Central", line.Stops[0].Name)

	ring, err := cat.FindBus("Ring")
	require.NoError(t, err)
	assert.True(t, ring.Roundtrip)
	assert.Len(t, ring.Stops, 3, "merged platforms collapse into one stop")

	central, _ := cat.FindStop("Central")
	market, _ := cat.FindStop("Market")
	d, ok := cat.Distance(central, market)
	require.True(t, ok)
	assert.Equal(t, int(math.Round(geo.Distance(central.Coordinates, market.Coordinates))), d)

	stats, err := cat.BusStatistics("94")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stats.Curvature, 1e-3)
}

func TestPopulate_KeepsExplicitDistances(t *testing.T) {
	g, err := NewGTFSIndexFromBytes(buildZip(t, sampleFeed))
	require.NoError(t, err)

	cat := catalogue.New()
	for _, s := range []struct {
		name     string
		lat, lng float64
	}{{"Central", 42.6977, 23.3219}, {"Market", 42.7, 23.33}} {
		_, err := cat.AddStop(s.name, geo.Coordinates{Lat: s.lat, Lng: s.lng})
		require.NoError(t, err)
	}
	require.NoError(t, cat.AddDistance("Central", "Market", 5000))

	_, err = g.Populate(cat)
	require.NoError(t, err)
	central, _ := cat.FindStop("Central")
	market, _ := cat.FindStop("Market")
	d, _ := cat.Distance(central, market)
	assert.Equal(t, 5000, d)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, buildZip(t, sampleFeed), 0644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, g.Stops(), 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.zip"))
	assert.Error(t, err)
}
