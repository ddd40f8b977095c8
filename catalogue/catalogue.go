package catalogue

import (
	"fmt"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// TransportCatalogue stores stops, buses and road distances in memory
type TransportCatalogue struct {
	stops       []*Stop             // stop arena, index == StopID
	buses       []*Bus              // insertion order
	stopByName  map[string]*Stop    // name -> stop
	busByName   map[string]*Bus     // name -> bus
	busesByStop map[StopID][]string // stop -> sorted bus names
	distances   map[stopPair]int    // (from, to) -> meters
}

// New creates an empty catalogue
func New() *TransportCatalogue {
	return &TransportCatalogue{
		stopByName:  map[string]*Stop{},
		busByName:   map[string]*Bus{},
		busesByStop: map[StopID][]string{},
		distances:   map[stopPair]int{},
	}
}

// AddStop registers a stop. Registering the same name twice fails with ErrDuplicateEntity.
func (c *TransportCatalogue) AddStop(name string, coords geo.Coordinates) (*Stop, error) {
	if name == "" {
		return nil, fmt.Errorf("stop: %w", ErrInvalidName)
	}
	if _, ok := c.stopByName[name]; ok {
		return nil, fmt.Errorf("stop %q: %w", name, ErrDuplicateEntity)
	}
	stop := &Stop{ID: StopID(len(c.stops)), Name: name, Coordinates: coords}
	c.stops = append(c.stops, stop)
	c.stopByName[name] = stop
	return stop, nil
}

// AddBus registers a bus over the named stops. Names that do not match a registered
// stop are dropped from the sequence.
func (c *TransportCatalogue) AddBus(name string, stopNames []string, roundtrip bool) (*Bus, error) {
	if name == "" {
		return nil, fmt.Errorf("bus: %w", ErrInvalidName)
	}
	if _, ok := c.busByName[name]; ok {
		return nil, fmt.Errorf("bus %q: %w", name, ErrDuplicateEntity)
	}
	bus := &Bus{Name: name, Stops: make([]*Stop, 0, len(stopNames)), Roundtrip: roundtrip}
	for _, stopName := range stopNames {
		stop, ok := c.stopByName[stopName]
		if !ok {
			continue
		}
		bus.Stops = append(bus.Stops, stop)
		c.indexBusAtStop(stop.ID, name)
	}
	c.buses = append(c.buses, bus)
	c.busByName[name] = bus
	return bus, nil
}

func (c *TransportCatalogue) indexBusAtStop(id StopID, busName string) {
	names := c.busesByStop[id]
	pos, found := slices.BinarySearch(names, busName)
	if found {
		return
	}
	c.busesByStop[id] = slices.Insert(names, pos, busName)
}

// AddDistance declares the road distance in meters from one stop to another.
// A later call for the same ordered pair replaces the earlier value.
func (c *TransportCatalogue) AddDistance(from, to string, meters int) error {
	if meters < 0 {
		return fmt.Errorf("distance %q -> %q = %d: %w", from, to, meters, ErrInvalidDistance)
	}
	fromStop, err := c.FindStop(from)
	if err != nil {
		return err
	}
	toStop, err := c.FindStop(to)
	if err != nil {
		return err
	}
	c.distances[stopPair{fromStop.ID, toStop.ID}] = meters
	return nil
}

// FindStop looks a stop up by exact name
func (c *TransportCatalogue) FindStop(name string) (*Stop, error) {
	if s, ok := c.stopByName[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("stop %q: %w", name, ErrNotFound)
}

// FindBus looks a bus up by exact name
func (c *TransportCatalogue) FindBus(name string) (*Bus, error) {
	if b, ok := c.busByName[name]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("bus %q: %w", name, ErrNotFound)
}

// BusesServing returns the sorted names of the buses visiting a stop.
// A known stop without buses yields an empty, non-nil slice.
func (c *TransportCatalogue) BusesServing(stopName string) ([]string, error) {
	stop, err := c.FindStop(stopName)
	if err != nil {
		return nil, err
	}
	names := c.busesByStop[stop.ID]
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Distance returns the road distance between two stops, falling back to the
// reverse direction when only that one was declared.
func (c *TransportCatalogue) Distance(from, to *Stop) (int, bool) {
	if d, ok := c.distances[stopPair{from.ID, to.ID}]; ok {
		return d, true
	}
	if d, ok := c.distances[stopPair{to.ID, from.ID}]; ok {
		return d, true
	}
	return 0, false
}

// Stops returns all stops in insertion order. The slice must not be modified.
func (c *TransportCatalogue) Stops() []*Stop { return c.stops }

// Buses returns all buses in insertion order. The slice must not be modified.
func (c *TransportCatalogue) Buses() []*Bus { return c.buses }

// StopCount returns the number of registered stops
func (c *TransportCatalogue) StopCount() int { return len(c.stops) }

// BusNames returns every bus name, sorted
func (c *TransportCatalogue) BusNames() []string {
	names := make([]string, 0, len(c.buses))
	for _, b := range c.buses {
		names = append(names, b.Name)
	}
	slices.Sort(names)
	return names
}
