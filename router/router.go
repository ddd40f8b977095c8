// Package router builds the time-weighted routing graph of a catalogue and answers
// fastest-journey queries over it.
//
// Every stop has a Wait vertex and a Board vertex. Waiting at a stop is the edge
// Wait -> Board weighted with the configured wait time. Riding a bus from stop i to a
// later stop j without leaving it is the edge Board(i) -> Wait(j) weighted with the
// ride time. Linear buses also get the mirrored rides j -> i, measured along the
// reverse direction.
//
// All pairs of stops of a bus get an edge, so graph size is quadratic in route
// length. That is fine for city networks but not for routes with thousands of stops.
package router

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
)

const (
	metersPerKilometer = 1000
	minutesPerHour     = 60
)

// Source is the read-only view of the catalogue the router is built from.
type Source interface {
	Stops() []*catalogue.Stop
	Buses() []*catalogue.Bus
	FindStop(name string) (*catalogue.Stop, error)
	RoadDistance(stops []*catalogue.Stop, i, j int, reverse bool) int
}

// TransportRouter answers fastest-route queries. It is immutable once built and
// safe for concurrent FindRoute calls.
type TransportRouter struct {
	settings config.RoutingSettings
	source   Source
	graph    *graph.DirectedWeightedGraph[float64]
	engine   *graph.Router[float64]
	edges    []edgeInfo // indexed by graph.EdgeID
}

// New builds the routing graph for a fully loaded catalogue. The catalogue must
// not change afterwards.
func New(src Source, settings config.RoutingSettings) (*TransportRouter, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	r := &TransportRouter{
		settings: settings,
		source:   src,
		graph:    graph.NewDirectedWeightedGraph[float64](2 * len(src.Stops())),
	}
	if err := r.addWaitEdges(); err != nil {
		return nil, err
	}
	for _, bus := range src.Buses() {
		if err := r.addBusEdges(bus); err != nil {
			return nil, err
		}
	}
	engine, err := graph.NewRouter(r.graph)
	if err != nil {
		return nil, err
	}
	r.engine = engine
	return r, nil
}

// VertexID maps a vertex to its graph id
func VertexID(v Vertex) graph.VertexID {
	return graph.VertexID(2*int(v.Stop) + int(v.Kind))
}

// VertexOf is the inverse of VertexID
func VertexOf(id graph.VertexID) Vertex {
	return Vertex{Kind: VertexKind(id % 2), Stop: catalogue.StopID(id / 2)}
}

func (r *TransportRouter) addEdge(from, to Vertex, weight float64, info edgeInfo) error {
	id, err := r.graph.AddEdge(graph.Edge[float64]{From: VertexID(from), To: VertexID(to), Weight: weight})
	if err != nil {
		return fmt.Errorf("routing graph: %w", err)
	}
	if int(id) != len(r.edges) {
		return fmt.Errorf("routing graph: edge id %d out of sequence", id)
	}
	r.edges = append(r.edges, info)
	return nil
}

func (r *TransportRouter) addWaitEdges() error {
	wait := float64(r.settings.BusWaitTime)
	for _, stop := range r.source.Stops() {
		info := edgeInfo{kind: LegWait, stop: stop.Name}
		if err := r.addEdge(Vertex{Wait, stop.ID}, Vertex{Board, stop.ID}, wait, info); err != nil {
			return err
		}
	}
	return nil
}

func (r *TransportRouter) addBusEdges(bus *catalogue.Bus) error {
	stops := bus.Stops
	for i := 0; i < len(stops); i++ {
		for j := i + 1; j < len(stops); j++ {
			span := j - i
			forward := r.rideTime(r.source.RoadDistance(stops, i, j, false))
			info := edgeInfo{kind: LegRide, bus: bus.Name, stop: stops[i].Name, span: span}
			if err := r.addEdge(Vertex{Board, stops[i].ID}, Vertex{Wait, stops[j].ID}, forward, info); err != nil {
				return err
			}
			if bus.Roundtrip {
				continue
			}
			backward := r.rideTime(r.source.RoadDistance(stops, i, j, true))
			info = edgeInfo{kind: LegRide, bus: bus.Name, stop: stops[j].Name, span: span}
			if err := r.addEdge(Vertex{Board, stops[j].ID}, Vertex{Wait, stops[i].ID}, backward, info); err != nil {
				return err
			}
		}
	}
	return nil
}

// rideTime converts meters to minutes at the configured velocity
func (r *TransportRouter) rideTime(meters int) float64 {
	return float64(meters) / (r.settings.BusVelocity * metersPerKilometer / minutesPerHour)
}

// Settings returns the settings the graph was built with
func (r *TransportRouter) Settings() config.RoutingSettings { return r.settings }

// Graph returns the frozen routing graph
func (r *TransportRouter) Graph() *graph.DirectedWeightedGraph[float64] { return r.graph }

// FindRoute returns the fastest journey between two stops. Unknown stop names yield
// catalogue.ErrNotFound and unreachable destinations ErrNoRoute.
func (r *TransportRouter) FindRoute(from, to string) (*Route, error) {
	fromStop, err := r.source.FindStop(from)
	if err != nil {
		return nil, err
	}
	toStop, err := r.source.FindStop(to)
	if err != nil {
		return nil, err
	}

	info, ok := r.engine.BuildRoute(VertexID(Vertex{Wait, fromStop.ID}), VertexID(Vertex{Wait, toStop.ID}))
	if !ok {
		return nil, fmt.Errorf("%q -> %q: %w", from, to, ErrNoRoute)
	}

	route := &Route{TotalTime: info.Weight, Legs: make([]Leg, 0, len(info.Edges))}
	for _, id := range info.Edges {
		meta := r.edges[id]
		route.Legs = append(route.Legs, Leg{
			Kind:      meta.kind,
			Stop:      meta.stop,
			Bus:       meta.bus,
			SpanCount: meta.span,
			Time:      r.graph.Edge(id).Weight,
		})
	}
	return route, nil
}
