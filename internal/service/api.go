// Package service is the API facade — the single entry point the state
// stores (and any other collaborator) consume.
//
// Every operation follows the same shape: check the cache where the
// operation is cacheable, wait out a simulated network latency on a miss,
// delegate to the repository, and wrap the result in a Response envelope.
// Writes go straight to the repository, which persists and invalidates;
// the next cacheable read recomputes from fresh data.
//
// Failure contract: update and delete on a missing id return a *Error
// with a NotFound cause; get-by-id on a missing id is a SUCCESSFUL
// response with nil data. The asymmetry is deliberate and relied on by
// the stores.
package service

import (
	"context"
	"time"

	"github.com/dmolina/fleetdesk/internal/cache"
	"github.com/dmolina/fleetdesk/internal/model"
	"github.com/dmolina/fleetdesk/internal/repository"
	"github.com/dmolina/fleetdesk/pkg/geo"
)

const dashboardStatsKey = "dashboard-stats"

// Latencies simulate network round-trip times per operation class.
// Zero values mean no wait, which is what the tests use.
type Latencies struct {
	Read   time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

// DefaultLatencies mirror a believable remote API: reads are quick,
// writes cost more.
func DefaultLatencies() Latencies {
	return Latencies{
		Read:   200 * time.Millisecond,
		Create: 700 * time.Millisecond,
		Update: 500 * time.Millisecond,
		Delete: 400 * time.Millisecond,
	}
}

// API is the facade over the repository and cache.
type API struct {
	repo    *repository.Repository
	cache   *cache.Cache
	latency Latencies
}

// New wires the facade to its repository and cache.
func New(repo *repository.Repository, c *cache.Cache, latency Latencies) *API {
	return &API{repo: repo, cache: c, latency: latency}
}

// ─── Shipments ──────────────────────────────────────────────

// Shipments lists shipments, optionally filtered by status and priority
// membership. Results are cached per filter combination; a cache hit
// returns immediately with no simulated latency.
func (a *API) Shipments(ctx context.Context, filters *model.FilterOptions) (model.Response[[]model.Shipment], error) {
	key := shipmentsCacheKey(filters)

	var cached []model.Shipment
	if a.cache.Get(key, &cached) {
		return model.OK(cached, "Success"), nil
	}

	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[[]model.Shipment]{}, err
	}

	shipments := a.repo.Shipments()
	if filters != nil {
		shipments = filterShipments(shipments, *filters)
	}

	a.cache.Set(key, shipments)
	return model.OK(shipments, "Success"), nil
}

// Shipment fetches one shipment by id. A missing id is not an error: the
// response succeeds with nil data.
func (a *API) Shipment(ctx context.Context, id string) (model.Response[*model.Shipment], error) {
	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[*model.Shipment]{}, err
	}

	s, ok := a.repo.ShipmentByID(id)
	if !ok {
		return model.OK[*model.Shipment](nil, "Success"), nil
	}
	return model.OK(&s, "Success"), nil
}

// CreateShipment stores a new shipment. The repository assigns the id and
// creation timestamp; when the payload has geocoded addresses but no
// route summary, one is estimated from the coordinates.
func (a *API) CreateShipment(ctx context.Context, s model.Shipment) (model.Response[model.Shipment], error) {
	if err := a.wait(ctx, a.latency.Create); err != nil {
		return model.Response[model.Shipment]{}, err
	}

	if s.Route == (model.RouteSummary{}) {
		if summary, ok := geo.RouteSummary(s.Origin, s.Destination); ok {
			s.Route = summary
		}
	}

	created := a.repo.CreateShipment(s)
	return model.OK(created, "Shipment created successfully"), nil
}

// UpdateShipment merges a partial update onto an existing shipment.
func (a *API) UpdateShipment(ctx context.Context, id string, patch model.ShipmentPatch) (model.Response[model.Shipment], error) {
	if err := a.wait(ctx, a.latency.Update); err != nil {
		return model.Response[model.Shipment]{}, err
	}

	updated, err := a.repo.UpdateShipment(id, patch)
	if err != nil {
		return model.Response[model.Shipment]{}, notFound("Shipment not found", err)
	}
	return model.OK(updated, "Shipment updated successfully"), nil
}

// DeleteShipment removes a shipment by id.
func (a *API) DeleteShipment(ctx context.Context, id string) (model.Response[bool], error) {
	if err := a.wait(ctx, a.latency.Delete); err != nil {
		return model.Response[bool]{}, err
	}

	if err := a.repo.DeleteShipment(id); err != nil {
		return model.Response[bool]{}, notFound("Shipment not found", err)
	}
	return model.OK(true, "Shipment deleted successfully"), nil
}

// ─── Vehicles ───────────────────────────────────────────────

// Vehicles lists the vehicle collection, cached under a fixed key.
func (a *API) Vehicles(ctx context.Context) (model.Response[[]model.Vehicle], error) {
	var cached []model.Vehicle
	if a.cache.Get("vehicles", &cached) {
		return model.OK(cached, "Success"), nil
	}

	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[[]model.Vehicle]{}, err
	}

	vehicles := a.repo.Vehicles()
	a.cache.Set("vehicles", vehicles)
	return model.OK(vehicles, "Success"), nil
}

// Vehicle fetches one vehicle by id; nil data when absent.
func (a *API) Vehicle(ctx context.Context, id string) (model.Response[*model.Vehicle], error) {
	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[*model.Vehicle]{}, err
	}

	v, ok := a.repo.VehicleByID(id)
	if !ok {
		return model.OK[*model.Vehicle](nil, "Success"), nil
	}
	return model.OK(&v, "Success"), nil
}

// CreateVehicle stores a new vehicle; the repository assigns the id.
func (a *API) CreateVehicle(ctx context.Context, v model.Vehicle) (model.Response[model.Vehicle], error) {
	if err := a.wait(ctx, a.latency.Create); err != nil {
		return model.Response[model.Vehicle]{}, err
	}

	created := a.repo.CreateVehicle(v)
	return model.OK(created, "Vehicle created successfully"), nil
}

// UpdateVehicle merges a partial update onto an existing vehicle.
func (a *API) UpdateVehicle(ctx context.Context, id string, patch model.VehiclePatch) (model.Response[model.Vehicle], error) {
	if err := a.wait(ctx, a.latency.Update); err != nil {
		return model.Response[model.Vehicle]{}, err
	}

	updated, err := a.repo.UpdateVehicle(id, patch)
	if err != nil {
		return model.Response[model.Vehicle]{}, notFound("Vehicle not found", err)
	}
	return model.OK(updated, "Vehicle updated successfully"), nil
}

// DeleteVehicle removes a vehicle by id.
func (a *API) DeleteVehicle(ctx context.Context, id string) (model.Response[bool], error) {
	if err := a.wait(ctx, a.latency.Delete); err != nil {
		return model.Response[bool]{}, err
	}

	if err := a.repo.DeleteVehicle(id); err != nil {
		return model.Response[bool]{}, notFound("Vehicle not found", err)
	}
	return model.OK(true, "Vehicle deleted successfully"), nil
}

// ─── Drivers ────────────────────────────────────────────────

// Drivers lists the driver collection, cached under a fixed key.
func (a *API) Drivers(ctx context.Context) (model.Response[[]model.Driver], error) {
	var cached []model.Driver
	if a.cache.Get("drivers", &cached) {
		return model.OK(cached, "Success"), nil
	}

	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[[]model.Driver]{}, err
	}

	drivers := a.repo.Drivers()
	a.cache.Set("drivers", drivers)
	return model.OK(drivers, "Success"), nil
}

// Driver fetches one driver by id; nil data when absent.
func (a *API) Driver(ctx context.Context, id string) (model.Response[*model.Driver], error) {
	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[*model.Driver]{}, err
	}

	d, ok := a.repo.DriverByID(id)
	if !ok {
		return model.OK[*model.Driver](nil, "Success"), nil
	}
	return model.OK(&d, "Success"), nil
}

// CreateDriver stores a new driver; the repository assigns the id.
func (a *API) CreateDriver(ctx context.Context, d model.Driver) (model.Response[model.Driver], error) {
	if err := a.wait(ctx, a.latency.Create); err != nil {
		return model.Response[model.Driver]{}, err
	}

	created := a.repo.CreateDriver(d)
	return model.OK(created, "Driver created successfully"), nil
}

// UpdateDriver merges a partial update onto an existing driver.
func (a *API) UpdateDriver(ctx context.Context, id string, patch model.DriverPatch) (model.Response[model.Driver], error) {
	if err := a.wait(ctx, a.latency.Update); err != nil {
		return model.Response[model.Driver]{}, err
	}

	updated, err := a.repo.UpdateDriver(id, patch)
	if err != nil {
		return model.Response[model.Driver]{}, notFound("Driver not found", err)
	}
	return model.OK(updated, "Driver updated successfully"), nil
}

// DeleteDriver removes a driver by id.
func (a *API) DeleteDriver(ctx context.Context, id string) (model.Response[bool], error) {
	if err := a.wait(ctx, a.latency.Delete); err != nil {
		return model.Response[bool]{}, err
	}

	if err := a.repo.DeleteDriver(id); err != nil {
		return model.Response[bool]{}, notFound("Driver not found", err)
	}
	return model.OK(true, "Driver deleted successfully"), nil
}

// ─── Dashboard ──────────────────────────────────────────────

// DashboardStats returns the aggregate counters over all three
// collections, cached under a fixed key. Every repository mutation
// invalidates that key, so a stale aggregate is never served.
func (a *API) DashboardStats(ctx context.Context) (model.Response[model.DashboardStats], error) {
	var cached model.DashboardStats
	if a.cache.Get(dashboardStatsKey, &cached) {
		return model.OK(cached, "Success"), nil
	}

	if err := a.wait(ctx, a.latency.Read); err != nil {
		return model.Response[model.DashboardStats]{}, err
	}

	stats := model.ComputeDashboardStats(a.repo.Shipments(), a.repo.Vehicles(), a.repo.Drivers())
	a.cache.Set(dashboardStatsKey, stats)
	return model.OK(stats, "Success"), nil
}

// ─── Administration ─────────────────────────────────────────

// ResetData restores the bundled fixtures and clears dependent caches.
func (a *API) ResetData() {
	a.repo.Reset()
}

// ClearCache drops every cache entry.
func (a *API) ClearCache() { a.cache.Clear() }

// ClearCachePattern drops every cache key containing the substring.
func (a *API) ClearCachePattern(pattern string) { a.cache.InvalidatePattern(pattern) }

// CacheStats returns cache introspection data.
func (a *API) CacheStats() cache.Stats { return a.cache.Stats() }

// ─── Helpers ────────────────────────────────────────────────

// wait simulates network latency, honoring context cancellation.
func (a *API) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shipmentsCacheKey keeps the unfiltered list and each filter combination
// under distinct, deterministic keys.
func shipmentsCacheKey(filters *model.FilterOptions) string {
	if filters == nil || filters.IsZero() {
		return cache.Key("shipments", nil)
	}
	return cache.Key("shipments", *filters)
}

// filterShipments applies status and priority membership tests. Search
// and date filtering are store-side concerns; the facade only narrows by
// the enumerable fields, mirroring a server-side list endpoint.
func filterShipments(shipments []model.Shipment, f model.FilterOptions) []model.Shipment {
	filtered := make([]model.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if len(f.Status) > 0 && !containsStatus(f.Status, s.Status) {
			continue
		}
		if len(f.Priority) > 0 && !containsPriority(f.Priority, s.Priority) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func containsStatus(set []model.ShipmentStatus, v model.ShipmentStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(set []model.Priority, v model.Priority) bool {
	for _, p := range set {
		if p == v {
			return true
		}
	}
	return false
}
