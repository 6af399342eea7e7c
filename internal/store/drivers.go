package store

import (
	"context"
	"sync"

	"github.com/dmolina/fleetdesk/internal/model"
	"github.com/dmolina/fleetdesk/internal/service"
)

// Drivers owns the client copy of the driver collection.
type Drivers struct {
	mu      sync.Mutex
	api     *service.API
	drivers []model.Driver
	loading bool
	err     string
}

// NewDrivers creates an empty drivers store wired to the facade.
func NewDrivers(api *service.API) *Drivers {
	return &Drivers{api: api}
}

// Items returns a copy of the raw collection.
func (s *Drivers) Items() []model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Driver(nil), s.drivers...)
}

// Loading reports whether an action is in flight.
func (s *Drivers) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last action's error message, empty when none.
func (s *Drivers) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ─── Derived views ──────────────────────────────────────────

// Active returns drivers who are working: available or on a delivery.
func (s *Drivers) Active() []model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Driver
	for _, d := range s.drivers {
		if d.Status == model.DriverAvailable || d.Status == model.DriverOnDelivery {
			out = append(out, d)
		}
	}
	return out
}

// Available returns drivers free for assignment.
func (s *Drivers) Available() []model.Driver {
	return s.byStatus(model.DriverAvailable)
}

// OnDelivery returns drivers currently delivering.
func (s *Drivers) OnDelivery() []model.Driver {
	return s.byStatus(model.DriverOnDelivery)
}

// OffDuty returns drivers outside working hours.
func (s *Drivers) OffDuty() []model.Driver {
	return s.byStatus(model.DriverOffDuty)
}

// Suspended returns drivers barred from assignments.
func (s *Drivers) Suspended() []model.Driver {
	return s.byStatus(model.DriverSuspended)
}

func (s *Drivers) byStatus(status model.DriverStatus) []model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Driver
	for _, d := range s.drivers {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// ─── Actions ────────────────────────────────────────────────

// Fetch replaces the collection with the facade's list result.
func (s *Drivers) Fetch(ctx context.Context) error {
	s.begin()
	resp, err := s.api.Drivers(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.drivers = resp.Data
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Create stores a new driver and appends the created record.
func (s *Drivers) Create(ctx context.Context, payload model.Driver) (model.Driver, error) {
	s.begin()
	resp, err := s.api.CreateDriver(ctx, payload)
	if err != nil {
		s.fail(err)
		return model.Driver{}, err
	}
	s.mu.Lock()
	s.drivers = append(s.drivers, resp.Data)
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

// Update merges a partial update and replaces the matching record.
func (s *Drivers) Update(ctx context.Context, id string, patch model.DriverPatch) (model.Driver, error) {
	s.begin()
	resp, err := s.api.UpdateDriver(ctx, id, patch)
	if err != nil {
		s.fail(err)
		return model.Driver{}, err
	}
	s.mu.Lock()
	for i := range s.drivers {
		if s.drivers[i].ID == id {
			s.drivers[i] = resp.Data
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

// Delete removes the driver locally after the facade confirms.
func (s *Drivers) Delete(ctx context.Context, id string) (bool, error) {
	s.begin()
	resp, err := s.api.DeleteDriver(ctx, id)
	if err != nil {
		s.fail(err)
		return false, err
	}
	s.mu.Lock()
	for i := range s.drivers {
		if s.drivers[i].ID == id {
			s.drivers = append(s.drivers[:i], s.drivers[i+1:]...)
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

func (s *Drivers) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Drivers) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errorMessage(err)
	s.mu.Unlock()
}
