package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// loadFromZip consumes the required CSVs in dependency order
func (g *GTFSIndex) loadFromZip(zr *zip.Reader) error {
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		files[strings.ToLower(path.Base(f.Name))] = f
	}
	for _, name := range requiredFiles {
		f, ok := files[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
		if err := g.consumeCSV(name, f); err != nil {
			return fmt.Errorf("gtfs %s: %w", name, err)
		}
	}
	return nil
}

func (g *GTFSIndex) consumeCSV(name string, f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], utf8BOM)
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch name {
	case "stops.txt":
		sID, sN, sLat, sLon := idx("stop_id"), idx("stop_name"), idx("stop_lat"), idx("stop_lon")
		if sID < 0 || sN < 0 || sLat < 0 || sLon < 0 {
			return fmt.Errorf("missing stop_id, stop_name, stop_lat or stop_lon column")
		}
		for line, row := range rec[1:] {
			lat, errLat := strconv.ParseFloat(cell(row, sLat), 64)
			lon, errLon := strconv.ParseFloat(cell(row, sLon), 64)
			stop := StopRecord{ID: cell(row, sID), Name: cell(row, sN), Lat: lat, Lon: lon}
			if stop.ID == "" || stop.Name == "" || errLat != nil || errLon != nil {
				log.Printf("gtfs stops.txt line %d: skipping stop %q without name or coordinates", line+2, stop.ID)
				continue
			}
			g.stopIndex[stop.ID] = len(g.stops)
			g.stops = append(g.stops, stop)
		}
	case "routes.txt":
		rID, rSN, rLN := idx("route_id"), idx("route_short_name"), idx("route_long_name")
		if rID < 0 {
			return fmt.Errorf("missing route_id column")
		}
		for _, row := range rec[1:] {
			id := cell(row, rID)
			if id == "" {
				continue
			}
			name := cell(row, rSN)
			if name == "" {
				name = cell(row, rLN)
			}
			if name == "" {
				name = id
			}
			if _, dup := g.routeNames[id]; !dup {
				g.routeOrder = append(g.routeOrder, id)
			}
			g.routeNames[id] = name
		}
	case "trips.txt":
		rID, tID := idx("route_id"), idx("trip_id")
		if rID < 0 || tID < 0 {
			return fmt.Errorf("missing route_id or trip_id column")
		}
		for _, row := range rec[1:] {
			if trip, route := cell(row, tID), cell(row, rID); trip != "" && route != "" {
				g.tripToRoute[trip] = route
			}
		}
	case "stop_times.txt":
		tID, sID, sq := idx("trip_id"), idx("stop_id"), idx("stop_sequence")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("missing trip_id, stop_id or stop_sequence column")
		}
		type stopTime struct {
			stop string
			seq  int
		}
		tmp := map[string][]stopTime{}
		for _, row := range rec[1:] {
			seq, err := strconv.Atoi(cell(row, sq))
			if err != nil {
				continue
			}
			trip := cell(row, tID)
			tmp[trip] = append(tmp[trip], stopTime{stop: cell(row, sID), seq: seq})
		}
		for trip, arr := range tmp {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			seqStops := make([]string, 0, len(arr))
			for _, v := range arr {
				seqStops = append(seqStops, v.stop)
			}
			g.tripStopSeq[trip] = seqStops
		}
	}
	return nil
}
