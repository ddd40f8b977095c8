package requests

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const (
	roundtripSeparator = " > "
	linearSeparator    = " - "
	distanceMarker     = "m to "
)

// ErrMalformedLine is returned for text lines that cannot be parsed
var ErrMalformedLine = errors.New("malformed line")

// TextQuery is one stat line of the text protocol
type TextQuery struct {
	Type string
	Name string
}

// TextBatch is a parsed text protocol input
type TextBatch struct {
	stops     []textStop
	buses     []textBus
	distances []distance
	Queries   []TextQuery
}

type textStop struct {
	name   string
	coords geo.Coordinates
}

type textBus struct {
	name      string
	stops     []string
	roundtrip bool
}

// ReadText parses a text protocol input. The stat section may be missing.
func ReadText(r io.Reader) (*TextBatch, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	batch := &TextBatch{}
	count, err := readCount(next, &lineNo, true)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		line, ok := next()
		if !ok {
			return nil, fmt.Errorf("expected %d base requests, got %d: %w", count, i, io.ErrUnexpectedEOF)
		}
		if err := batch.parseBase(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	count, err = readCount(next, &lineNo, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		line, ok := next()
		if !ok {
			return nil, fmt.Errorf("expected %d stat requests, got %d: %w", count, i, io.ErrUnexpectedEOF)
		}
		q, err := parseQuery(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		batch.Queries = append(batch.Queries, q)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return batch, nil
}

func readCount(next func() (string, bool), lineNo *int, required bool) (int, error) {
	line, ok := next()
	if !ok {
		if required {
			return 0, fmt.Errorf("missing request count: %w", io.ErrUnexpectedEOF)
		}
		return 0, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: request count %q: %w", *lineNo, line, ErrMalformedLine)
	}
	return n, nil
}

// splitCommand splits "Stop Name: rest" into the command, the name and the rest
func splitCommand(line string) (cmd, name, rest string, err error) {
	cmd, tail, ok := strings.Cut(line, " ")
	if !ok {
		return "", "", "", fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	name, rest, ok = strings.Cut(tail, ":")
	if !ok {
		return "", "", "", fmt.Errorf("%q: missing colon: %w", line, ErrMalformedLine)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", fmt.Errorf("%q: empty name: %w", line, ErrMalformedLine)
	}
	return cmd, name, strings.TrimSpace(rest), nil
}

func (b *TextBatch) parseBase(line string) error {
	cmd, name, rest, err := splitCommand(line)
	if err != nil {
		return err
	}
	switch cmd {
	case TypeStop:
		return b.parseStop(name, rest)
	case TypeBus:
		b.buses = append(b.buses, parseBus(name, rest))
		return nil
	}
	return fmt.Errorf("unknown command %q: %w", cmd, ErrMalformedLine)
}

// parseStop reads "lat, lng[, Dm to Other]..."
func (b *TextBatch) parseStop(name, rest string) error {
	fields := strings.Split(rest, ",")
	if len(fields) < 2 {
		return fmt.Errorf("stop %q: want latitude and longitude: %w", name, ErrMalformedLine)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return fmt.Errorf("stop %q latitude: %w", name, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return fmt.Errorf("stop %q longitude: %w", name, err)
	}
	b.stops = append(b.stops, textStop{name: name, coords: geo.Coordinates{Lat: lat, Lng: lng}})

	for _, f := range fields[2:] {
		meters, to, ok := strings.Cut(strings.TrimSpace(f), distanceMarker)
		if !ok {
			return fmt.Errorf("stop %q distance %q: %w", name, f, ErrMalformedLine)
		}
		d, err := strconv.Atoi(meters)
		if err != nil {
			return fmt.Errorf("stop %q distance %q: %w", name, f, err)
		}
		b.distances = append(b.distances, distance{from: name, to: strings.TrimSpace(to), meters: d})
	}
	return nil
}

// parseBus reads "A > B > A" as a roundtrip and "A - B - C" as a linear route.
// Separators need surrounding spaces, so hyphenated stop names survive.
func parseBus(name, rest string) textBus {
	sep, roundtrip := linearSeparator, false
	if strings.Contains(rest, roundtripSeparator) {
		sep, roundtrip = roundtripSeparator, true
	}
	var stops []string
	for _, s := range strings.Split(rest, sep) {
		if s = strings.TrimSpace(s); s != "" {
			stops = append(stops, s)
		}
	}
	return textBus{name: name, stops: stops, roundtrip: roundtrip}
}

func parseQuery(line string) (TextQuery, error) {
	cmd, name, ok := strings.Cut(line, " ")
	name = strings.TrimSpace(name)
	if !ok || name == "" || (cmd != TypeStop && cmd != TypeBus) {
		return TextQuery{}, fmt.Errorf("stat request %q: %w", line, ErrMalformedLine)
	}
	return TextQuery{Type: cmd, Name: name}, nil
}

// Apply ingests the parsed base requests into cat: stops, then distances, then buses.
func (b *TextBatch) Apply(cat *catalogue.TransportCatalogue) error {
	for _, s := range b.stops {
		if _, err := cat.AddStop(s.name, s.coords); err != nil {
			return err
		}
	}
	if err := applyDistances(cat, b.distances); err != nil {
		return err
	}
	for _, bus := range b.buses {
		if _, err := cat.AddBus(bus.name, bus.stops, bus.roundtrip); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextStats answers queries one line each
func WriteTextStats(w io.Writer, h StatHandler, queries []TextQuery) error {
	bw := bufio.NewWriter(w)
	for _, q := range queries {
		var line string
		switch q.Type {
		case TypeBus:
			line = busLine(h, q.Name)
		case TypeStop:
			line = stopLine(h, q.Name)
		default:
			line = fmt.Sprintf("%s %s: %s", q.Type, q.Name, NotFoundMessage)
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func busLine(h StatHandler, name string) string {
	stats, err := h.BusStat(name)
	if err != nil {
		return fmt.Sprintf("Bus %s: %s", name, NotFoundMessage)
	}
	return fmt.Sprintf("Bus %s: %d stops on route, %d unique stops, %s route length, %s curvature",
		name, stats.StopCount, stats.UniqueStopCount,
		formatter.Number(stats.RoadLength), formatter.Number(stats.Curvature))
}

func stopLine(h StatHandler, name string) string {
	buses, err := h.StopBuses(name)
	switch {
	case err != nil:
		return fmt.Sprintf("Stop %s: %s", name, NotFoundMessage)
	case len(buses) == 0:
		return fmt.Sprintf("Stop %s: no buses", name)
	}
	return fmt.Sprintf("Stop %s: buses %s", name, strings.Join(buses, " "))
}
