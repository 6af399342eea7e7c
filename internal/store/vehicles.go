package store

import (
	"context"
	"sync"

	"github.com/dmolina/fleetdesk/internal/model"
	"github.com/dmolina/fleetdesk/internal/service"
)

// Vehicles owns the client copy of the vehicle collection.
type Vehicles struct {
	mu       sync.Mutex
	api      *service.API
	vehicles []model.Vehicle
	loading  bool
	err      string
}

// NewVehicles creates an empty vehicles store wired to the facade.
func NewVehicles(api *service.API) *Vehicles {
	return &Vehicles{api: api}
}

// Items returns a copy of the raw collection.
func (s *Vehicles) Items() []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Vehicle(nil), s.vehicles...)
}

// Loading reports whether an action is in flight.
func (s *Vehicles) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last action's error message, empty when none.
func (s *Vehicles) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ─── Derived views ──────────────────────────────────────────

// Available returns vehicles ready for assignment.
func (s *Vehicles) Available() []model.Vehicle {
	return s.byStatus(model.VehicleAvailable)
}

// InUse returns vehicles currently on the road.
func (s *Vehicles) InUse() []model.Vehicle {
	return s.byStatus(model.VehicleInUse)
}

// InMaintenance returns vehicles in the shop.
func (s *Vehicles) InMaintenance() []model.Vehicle {
	return s.byStatus(model.VehicleMaintenance)
}

// Offline returns vehicles out of service.
func (s *Vehicles) Offline() []model.Vehicle {
	return s.byStatus(model.VehicleOffline)
}

func (s *Vehicles) byStatus(status model.VehicleStatus) []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Vehicle
	for _, v := range s.vehicles {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out
}

// ─── Actions ────────────────────────────────────────────────

// Fetch replaces the collection with the facade's list result.
func (s *Vehicles) Fetch(ctx context.Context) error {
	s.begin()
	resp, err := s.api.Vehicles(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.vehicles = resp.Data
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Create stores a new vehicle and appends the created record.
func (s *Vehicles) Create(ctx context.Context, payload model.Vehicle) (model.Vehicle, error) {
	s.begin()
	resp, err := s.api.CreateVehicle(ctx, payload)
	if err != nil {
		s.fail(err)
		return model.Vehicle{}, err
	}
	s.mu.Lock()
	s.vehicles = append(s.vehicles, resp.Data)
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

// Update merges a partial update and replaces the matching record.
func (s *Vehicles) Update(ctx context.Context, id string, patch model.VehiclePatch) (model.Vehicle, error) {
	s.begin()
	resp, err := s.api.UpdateVehicle(ctx, id, patch)
	if err != nil {
		s.fail(err)
		return model.Vehicle{}, err
	}
	s.mu.Lock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles[i] = resp.Data
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

// UpdateStatus is the common single-field update used by the fleet board.
func (s *Vehicles) UpdateStatus(ctx context.Context, id string, status model.VehicleStatus) (model.Vehicle, error) {
	return s.Update(ctx, id, model.VehiclePatch{Status: &status})
}

// Delete removes the vehicle locally after the facade confirms.
func (s *Vehicles) Delete(ctx context.Context, id string) (bool, error) {
	s.begin()
	resp, err := s.api.DeleteVehicle(ctx, id)
	if err != nil {
		s.fail(err)
		return false, err
	}
	s.mu.Lock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

func (s *Vehicles) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Vehicles) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errorMessage(err)
	s.mu.Unlock()
}
