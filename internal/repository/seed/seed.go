// Package seed bundles the fixture dataset the repository falls back to
// when no durable snapshot exists.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/dmolina/fleetdesk/internal/model"
)

//go:embed shipments.json vehicles.json drivers.json
var fixtures embed.FS

// Shipments decodes the bundled shipment fixtures.
func Shipments() ([]model.Shipment, error) {
	var out []model.Shipment
	if err := load("shipments.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Vehicles decodes the bundled vehicle fixtures.
func Vehicles() ([]model.Vehicle, error) {
	var out []model.Vehicle
	if err := load("vehicles.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Drivers decodes the bundled driver fixtures.
func Drivers() ([]model.Driver, error) {
	var out []model.Driver
	if err := load("drivers.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func load(name string, dest any) error {
	data, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("seed: decode %s: %w", name, err)
	}
	return nil
}
