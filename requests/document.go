package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
)

// Request type names shared by both protocols
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

var validate = validator.New()

// Document is a complete JSON request document
type Document struct {
	BaseRequests    []BaseRequest           `json:"base_requests" validate:"dive"`
	RoutingSettings *config.RoutingSettings `json:"routing_settings"`
	RenderSettings  *renderer.Settings      `json:"render_settings"`
	StatRequests    []StatRequest           `json:"stat_requests" validate:"dive"`
}

// BaseRequest registers a stop or a bus
type BaseRequest struct {
	Type string `json:"type" validate:"required,oneof=Stop Bus"`
	Name string `json:"name" validate:"required"`

	// Stop fields
	Latitude      float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"dive,gte=0"`

	// Bus fields
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest is a query answered after ingestion
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Stop Bus Route Map"`
	Name string `json:"name"`
	From string `json:"from" validate:"required_if=Type Route"`
	To   string `json:"to" validate:"required_if=Type Route"`
}

// ReadDocument decodes and validates a request document
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode request document: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid request document: %w", err)
	}
	return &doc, nil
}

// Apply ingests the base requests into cat: stops, then road distances, then buses.
func (d *Document) Apply(cat *catalogue.TransportCatalogue) error {
	var distances []distance
	var buses []BaseRequest
	for _, req := range d.BaseRequests {
		switch req.Type {
		case TypeStop:
			coords := geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}
			if _, err := cat.AddStop(req.Name, coords); err != nil {
				return err
			}
			for to, meters := range req.RoadDistances {
				distances = append(distances, distance{from: req.Name, to: to, meters: meters})
			}
		case TypeBus:
			buses = append(buses, req)
		}
	}
	if err := applyDistances(cat, distances); err != nil {
		return err
	}
	for _, req := range buses {
		if _, err := cat.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return err
		}
	}
	return nil
}

// Routing returns the document routing settings, or fallback when absent
func (d *Document) Routing(fallback config.RoutingSettings) config.RoutingSettings {
	if d.RoutingSettings == nil {
		return fallback
	}
	return *d.RoutingSettings
}

// Render returns the document render settings, or fallback when absent
func (d *Document) Render(fallback renderer.Settings) renderer.Settings {
	if d.RenderSettings == nil {
		return fallback
	}
	return *d.RenderSettings
}

type distance struct {
	from, to string
	meters   int
}

func applyDistances(cat *catalogue.TransportCatalogue, distances []distance) error {
	for _, d := range distances {
		err := cat.AddDistance(d.from, d.to, d.meters)
		switch {
		case err == nil:
		case errors.Is(err, catalogue.ErrNotFound):
			log.Printf("skipping road distance %q -> %q: %v", d.from, d.to, err)
		default:
			return err
		}
	}
	return nil
}
