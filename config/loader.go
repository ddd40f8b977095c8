package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
)

const (
	DefaultBusWaitTime = 6
	DefaultBusVelocity = 40.0
)

// Config is the global application configuration
var Config = Default()

var validate = validator.New()

// Default returns the configuration used when no config file is present
func Default() AppConfig {
	return AppConfig{
		Routing: RoutingSettings{BusWaitTime: DefaultBusWaitTime, BusVelocity: DefaultBusVelocity},
		Render:  renderer.DefaultSettings(),
		Output:  OutputConfig{Format: "json"},
	}
}

// LoadAppConfig loads and validates the application configuration.
//
// Without arguments it tries config.yml and ./config/config.yml and keeps the
// defaults when neither exists. With explicit paths, the first readable one is
// used and a missing file is an error.
func LoadAppConfig(paths ...string) error {
	explicit := len(paths) > 0
	if !explicit {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			Config = Default()
			return nil
		}
		return err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	Config = cfg
	return nil
}

// Validate checks the routing settings against their bounds
func (s RoutingSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid routing settings: %w", err)
	}
	return nil
}

// ValidateRender checks render settings coming from outside the config file
func ValidateRender(s renderer.Settings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid render settings: %w", err)
	}
	return nil
}

// SelectFeed returns the GTFS source with the given name
func SelectFeed(name string) (GTFSConfig, bool) {
	for _, f := range Config.Feeds {
		if f.Name == name {
			return f.GTFS, true
		}
	}
	return GTFSConfig{}, false
}
