package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dmolina/fleetdesk/internal/model"
	"github.com/dmolina/fleetdesk/internal/service"
)

// Shipments owns the client copy of the shipment collection plus the
// active filter criteria.
type Shipments struct {
	mu        sync.Mutex
	api       *service.API
	shipments []model.Shipment
	filters   model.FilterOptions
	loading   bool
	err       string
}

// NewShipments creates an empty shipments store wired to the facade.
func NewShipments(api *service.API) *Shipments {
	return &Shipments{api: api}
}

// ─── State accessors ────────────────────────────────────────

// Items returns a copy of the raw collection.
func (s *Shipments) Items() []model.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Shipment(nil), s.shipments...)
}

// Loading reports whether an action is in flight.
func (s *Shipments) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last action's error message, empty when none.
func (s *Shipments) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Filters returns the active filter criteria.
func (s *Shipments) Filters() model.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// UpdateFilters shallow-merges the set fields of f onto the active
// criteria; zero fields leave the existing criteria alone.
func (s *Shipments) UpdateFilters(f model.FilterOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Status != nil {
		s.filters.Status = f.Status
	}
	if f.Priority != nil {
		s.filters.Priority = f.Priority
	}
	if f.DateRange != nil {
		s.filters.DateRange = f.DateRange
	}
	if f.SearchTerm != "" {
		s.filters.SearchTerm = f.SearchTerm
	}
}

// ClearFilters resets to empty criteria — match everything.
func (s *Shipments) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = model.FilterOptions{}
}

// ─── Derived views ──────────────────────────────────────────

// Filtered applies the active criteria — status membership AND priority
// membership AND a case-insensitive substring search across tracking
// number, customer name, and origin/destination city — and returns the
// matches sorted newest-first. The sort is stable: equal timestamps keep
// their original relative order.
func (s *Shipments) Filtered() []model.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.Shipment, 0, len(s.shipments))
	term := strings.ToLower(s.filters.SearchTerm)
	for _, sh := range s.shipments {
		if len(s.filters.Status) > 0 && !statusIn(s.filters.Status, sh.Status) {
			continue
		}
		if len(s.filters.Priority) > 0 && !priorityIn(s.filters.Priority, sh.Priority) {
			continue
		}
		if term != "" && !matchesSearch(sh, term) {
			continue
		}
		filtered = append(filtered, sh)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered
}

// Pending returns shipments awaiting pickup.
func (s *Shipments) Pending() []model.Shipment {
	return s.byStatus(model.ShipmentPending)
}

// Active returns shipments currently in transit.
func (s *Shipments) Active() []model.Shipment {
	return s.byStatus(model.ShipmentInTransit)
}

// Delivered returns completed shipments.
func (s *Shipments) Delivered() []model.Shipment {
	return s.byStatus(model.ShipmentDelivered)
}

// Cancelled returns cancelled shipments.
func (s *Shipments) Cancelled() []model.Shipment {
	return s.byStatus(model.ShipmentCancelled)
}

// Delayed returns shipments flagged as delayed.
func (s *Shipments) Delayed() []model.Shipment {
	return s.byStatus(model.ShipmentDelayed)
}

func (s *Shipments) byStatus(status model.ShipmentStatus) []model.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Shipment
	for _, sh := range s.shipments {
		if sh.Status == status {
			out = append(out, sh)
		}
	}
	return out
}

// ─── Actions ────────────────────────────────────────────────

// Fetch replaces the collection with the facade's list result.
func (s *Shipments) Fetch(ctx context.Context) error {
	s.begin()
	resp, err := s.api.Shipments(ctx, nil)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.shipments = resp.Data
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Create stores a new shipment and appends the created record.
func (s *Shipments) Create(ctx context.Context, payload model.Shipment) (model.Shipment, error) {
	s.begin()
	resp, err := s.api.CreateShipment(ctx, payload)
	if err != nil {
		s.fail(err)
		return model.Shipment{}, err
	}
	s.mu.Lock()
	s.shipments = append(s.shipments, resp.Data)
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

// Update merges a partial update and replaces the matching record.
func (s *Shipments) Update(ctx context.Context, id string, patch model.ShipmentPatch) (model.Shipment, error) {
	s.begin()
	resp, err := s.api.UpdateShipment(ctx, id, patch)
	if err != nil {
		s.fail(err)
		return model.Shipment{}, err
	}
	s.mu.Lock()
	for i := range s.shipments {
		if s.shipments[i].ID == id {
			s.shipments[i] = resp.Data
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

// Delete removes the shipment locally after the facade confirms.
func (s *Shipments) Delete(ctx context.Context, id string) (bool, error) {
	s.begin()
	resp, err := s.api.DeleteShipment(ctx, id)
	if err != nil {
		s.fail(err)
		return false, err
	}
	s.mu.Lock()
	for i := range s.shipments {
		if s.shipments[i].ID == id {
			s.shipments = append(s.shipments[:i], s.shipments[i+1:]...)
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return resp.Data, nil
}

func (s *Shipments) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Shipments) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errorMessage(err)
	s.mu.Unlock()
}

// ─── Filter helpers ─────────────────────────────────────────

func statusIn(set []model.ShipmentStatus, v model.ShipmentStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func priorityIn(set []model.Priority, v model.Priority) bool {
	for _, p := range set {
		if p == v {
			return true
		}
	}
	return false
}

func matchesSearch(s model.Shipment, term string) bool {
	return strings.Contains(strings.ToLower(s.TrackingNumber), term) ||
		strings.Contains(strings.ToLower(s.Customer.Name), term) ||
		strings.Contains(strings.ToLower(s.Origin.City), term) ||
		strings.Contains(strings.ToLower(s.Destination.City), term)
}
