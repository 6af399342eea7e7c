package store

import (
	"context"
	"sync"

	"github.com/dmolina/fleetdesk/internal/model"
	"github.com/dmolina/fleetdesk/internal/service"
)

// Dashboard holds the aggregate counters. Stats come either from the
// facade (cached server-side) or from Computed, which derives the same
// numbers from the sibling stores without a round trip. The two agree
// whenever the stores hold the same data the facade sees.
type Dashboard struct {
	mu      sync.Mutex
	api     *service.API
	stats   *model.DashboardStats
	loading bool
	err     string

	shipments *Shipments
	vehicles  *Vehicles
	drivers   *Drivers
}

// NewDashboard wires the dashboard store to the facade and the sibling
// entity stores used for local aggregation.
func NewDashboard(api *service.API, shipments *Shipments, vehicles *Vehicles, drivers *Drivers) *Dashboard {
	return &Dashboard{api: api, shipments: shipments, vehicles: vehicles, drivers: drivers}
}

// Stats returns the last fetched aggregate, nil before the first fetch.
func (s *Dashboard) Stats() *model.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	stats := *s.stats
	return &stats
}

// Loading reports whether a fetch is in flight.
func (s *Dashboard) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last action's error message, empty when none.
func (s *Dashboard) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch replaces the aggregate with the facade's cached computation.
func (s *Dashboard) Fetch(ctx context.Context) error {
	s.begin()
	resp, err := s.api.DashboardStats(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	stats := resp.Data
	s.stats = &stats
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Computed derives the aggregate from the sibling stores' current state,
// avoiding a facade round trip.
func (s *Dashboard) Computed() model.DashboardStats {
	return model.ComputeDashboardStats(
		s.shipments.Items(),
		s.vehicles.Items(),
		s.drivers.Items(),
	)
}

func (s *Dashboard) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Dashboard) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errorMessage(err)
	s.mu.Unlock()
}
