package requests

import (
	"errors"
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// NotFoundMessage is the error message of every failed stat request
const NotFoundMessage = "not found"

// StatHandler answers stat requests against a loaded network
type StatHandler interface {
	StopBuses(stopName string) ([]string, error)
	BusStat(busName string) (catalogue.BusStats, error)
	Route(from, to string) (*router.Route, error)
	RenderMap() string
}

// ErrorResponse answers a request whose stop, bus or route does not exist
type ErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// StopResponse lists the buses serving a stop
type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

// BusResponse carries bus statistics. Curvature is null when the route has no
// geographic length.
type BusResponse struct {
	RequestID       int      `json:"request_id"`
	Curvature       *float64 `json:"curvature"`
	RouteLength     float64  `json:"route_length"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
}

// RouteResponse is a fastest journey. Items are WaitItem and BusItem values in
// travel order.
type RouteResponse struct {
	RequestID int     `json:"request_id"`
	TotalTime float64 `json:"total_time"`
	Items     []any   `json:"items"`
}

// WaitItem is a wait at a stop
type WaitItem struct {
	Type     string  `json:"type"`
	StopName string  `json:"stop_name"`
	Time     float64 `json:"time"`
}

// BusItem is a ride over SpanCount consecutive hops of one bus
type BusItem struct {
	Type      string  `json:"type"`
	Bus       string  `json:"bus"`
	SpanCount int     `json:"span_count"`
	Time      float64 `json:"time"`
}

// MapResponse carries the rendered SVG map
type MapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

// Process answers the stat requests in document order. The map is rendered at most
// once and shared between Map requests.
func (d *Document) Process(h StatHandler) []any {
	var svg *string
	responses := make([]any, 0, len(d.StatRequests))
	for _, req := range d.StatRequests {
		var resp any
		switch req.Type {
		case TypeStop:
			resp = stopResponse(h, req)
		case TypeBus:
			resp = busResponse(h, req)
		case TypeRoute:
			resp = routeResponse(h, req)
		case TypeMap:
			if svg == nil {
				m := h.RenderMap()
				svg = &m
			}
			resp = MapResponse{RequestID: req.ID, Map: *svg}
		default:
			resp = ErrorResponse{RequestID: req.ID, ErrorMessage: NotFoundMessage}
		}
		responses = append(responses, resp)
	}
	return responses
}

func stopResponse(h StatHandler, req StatRequest) any {
	buses, err := h.StopBuses(req.Name)
	if err != nil {
		return errorResponse(req.ID, err)
	}
	return StopResponse{RequestID: req.ID, Buses: buses}
}

func busResponse(h StatHandler, req StatRequest) any {
	stats, err := h.BusStat(req.Name)
	if err != nil {
		return errorResponse(req.ID, err)
	}
	resp := BusResponse{
		RequestID:       req.ID,
		RouteLength:     stats.RoadLength,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
	}
	if !math.IsNaN(stats.Curvature) && !math.IsInf(stats.Curvature, 0) {
		c := stats.Curvature
		resp.Curvature = &c
	}
	return resp
}

func routeResponse(h StatHandler, req StatRequest) any {
	route, err := h.Route(req.From, req.To)
	if err != nil {
		return errorResponse(req.ID, err)
	}
	items := make([]any, 0, len(route.Legs))
	for _, leg := range route.Legs {
		if leg.Kind == router.LegWait {
			items = append(items, WaitItem{Type: "Wait", StopName: leg.Stop, Time: leg.Time})
			continue
		}
		items = append(items, BusItem{Type: TypeBus, Bus: leg.Bus, SpanCount: leg.SpanCount, Time: leg.Time})
	}
	return RouteResponse{RequestID: req.ID, TotalTime: route.TotalTime, Items: items}
}

func errorResponse(id int, err error) ErrorResponse {
	msg := NotFoundMessage
	if !errors.Is(err, catalogue.ErrNotFound) {
		msg = err.Error()
	}
	return ErrorResponse{RequestID: id, ErrorMessage: msg}
}
