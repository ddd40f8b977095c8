package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `{
  "base_requests": [
    {"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false},
    {"type": "Stop", "name": "A", "latitude": 0, "longitude": 0, "road_distances": {"B": 2000}},
    {"type": "Stop", "name": "B", "latitude": 0, "longitude": 0.01}
  ],
  "routing_settings": {"bus_wait_time": 2, "bus_velocity": 30},
  "stat_requests": [
    {"id": 1, "type": "Route", "from": "A", "to": "B"},
    {"id": 2, "type": "Stop", "name": "Z"}
  ]
}`

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	mapPath := filepath.Join(t.TempDir(), "map.svg")
	err := run(options{format: "json", mapPath: mapPath}, strings.NewReader(document), &out)
	require.NoError(t, err)

	var responses []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &responses))
	require.Len(t, responses, 2)
	// 2 min wait plus 2000 m at 500 m/min
	assert.InDelta(t, 6.0, responses[0]["total_time"], 1e-9)
	assert.Equal(t, "not found", responses[1]["error_message"])

	svg, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRun_TextFromFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.txt")
	body := "3\nStop A: 0, 0, 1000m to B\nStop B: 0, 0.01\nBus 1: A - B\n2\nBus 1\nStop B\n"
	require.NoError(t, os.WriteFile(input, []byte(body), 0644))

	var out bytes.Buffer
	require.NoError(t, run(options{format: "text", input: input}, strings.NewReader(""), &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Bus 1: 3 stops on route, 2 unique stops, 2000 route length"))
	assert.Equal(t, "Stop B: buses 1", lines[1])
}

func TestRun_GTFSPreload(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\nS1,A,0,0\nS2,B,0,0.01\n",
		"routes.txt":     "route_id,route_short_name\nR1,7\n",
		"trips.txt":      "route_id,trip_id\nR1,T1\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\nT1,S1,1\nT1,S2,2\n",
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	feed := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(feed, buf.Bytes(), 0644))

	var out bytes.Buffer
	err := run(options{format: "text", gtfs: feed}, strings.NewReader("0\n1\nStop A\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "Stop A: buses 7\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(options{format: "xml"}, strings.NewReader(""), &out))
	assert.Error(t, run(options{format: "json"}, strings.NewReader("{"), &out))
	assert.Error(t, run(options{format: "json", input: filepath.Join(t.TempDir(), "missing.json")}, nil, &out))
	assert.Error(t, run(options{configPath: filepath.Join(t.TempDir(), "missing.yml")}, strings.NewReader(""), &out))
}
