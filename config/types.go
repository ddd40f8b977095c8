package config

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
)

// RoutingSettings controls the travel-time model of the router
type RoutingSettings struct {
	// BusWaitTime is the wait at every boarding, in minutes.
	BusWaitTime int `yaml:"bus_wait_time" json:"bus_wait_time" validate:"gte=0,lte=1000"`
	// BusVelocity is the bus speed in km/h.
	BusVelocity float64 `yaml:"bus_velocity" json:"bus_velocity" validate:"gt=0,lte=1000"`
}

// GTFSConfig points at a local GTFS static zip
type GTFSConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// Feed is a named GTFS source that can be loaded before the request document
type Feed struct {
	Name string     `yaml:"name" validate:"required"`
	GTFS GTFSConfig `yaml:"gtfs" validate:"required"`
}

// OutputConfig contains response formatting options
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
	Indent bool   `yaml:"indent"`
}

// LoggingConfig contains logging options
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Routing RoutingSettings   `yaml:"routing_settings" validate:"required"`
	Render  renderer.Settings `yaml:"render_settings"`
	Output  OutputConfig      `yaml:"output"`
	Logging LoggingConfig     `yaml:"logging"`
	Feeds   []Feed            `yaml:"feeds" validate:"dive"`
}
