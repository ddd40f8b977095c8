// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It carries the routing settings (bus wait time and velocity), the map render
// settings, output options and named GTFS feeds that can be preloaded by name.
// Settings found in a request document override the file values.
package config
