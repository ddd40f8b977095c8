// Package transportcatalogue wires the catalogue, the router and the map renderer
// into one read-only request handler.
package transportcatalogue

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Handler answers stat queries against a fully loaded network
type Handler struct {
	catalogue *catalogue.TransportCatalogue
	router    *router.TransportRouter
	renderer  *renderer.MapRenderer
}

// NewHandler builds the routing graph once and returns a handler over it.
// The catalogue must not be modified afterwards.
func NewHandler(cat *catalogue.TransportCatalogue, routing config.RoutingSettings, render renderer.Settings) (*Handler, error) {
	if err := config.ValidateRender(render); err != nil {
		return nil, err
	}
	rt, err := router.New(cat, routing)
	if err != nil {
		return nil, err
	}
	return &Handler{
		catalogue: cat,
		router:    rt,
		renderer:  renderer.NewMapRenderer(render),
	}, nil
}

// StopBuses returns the sorted names of the buses serving a stop
func (h *Handler) StopBuses(stopName string) ([]string, error) {
	return h.catalogue.BusesServing(stopName)
}

// BusStat returns the route statistics of a bus
func (h *Handler) BusStat(busName string) (catalogue.BusStats, error) {
	return h.catalogue.BusStatistics(busName)
}

// Route returns the fastest journey between two stops
func (h *Handler) Route(from, to string) (*router.Route, error) {
	return h.router.FindRoute(from, to)
}

// RenderMap draws the network as an SVG document
func (h *Handler) RenderMap() string {
	return h.renderer.Render(h.catalogue).String()
}
