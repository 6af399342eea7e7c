// Package repository owns the three entity collections backing the mock
// API. Collections live in memory and are mirrored to the durable local
// store on every mutation, so the dataset survives restarts.
//
// Seeding order on startup: durable snapshot → bundled fixtures →
// built-in defaults. Whichever source wins is persisted immediately so
// later loads are stable.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmolina/fleetdesk/internal/cache"
	"github.com/dmolina/fleetdesk/internal/model"
	"github.com/dmolina/fleetdesk/internal/repository/seed"
	"github.com/dmolina/fleetdesk/internal/storage"
)

// ErrNotFound is returned by update/delete operations referencing an id
// absent from the collection. Reads never return it; a missing id on a
// read is an ordinary "no result".
var ErrNotFound = errors.New("not found")

// snapshotVersion tags persisted collections so a future shape change can
// detect incompatible data instead of silently misdecoding it.
const snapshotVersion = 1

type collectionSnapshot[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// Repository holds the shipment, vehicle, and driver collections.
//
// Ids are generated from monotonic per-entity counters seeded from the
// highest existing numeric suffix, so deleting and re-creating records
// never reuses an id.
type Repository struct {
	mu        sync.Mutex
	shipments []model.Shipment
	vehicles  []model.Vehicle
	drivers   []model.Driver

	nextShipment int
	nextVehicle  int
	nextDriver   int

	store     *storage.Store
	cache     *cache.Cache
	namespace string

	now func() time.Time
}

// New builds a repository over the given durable store and cache, seeding
// the collections as described in the package comment.
func New(store *storage.Store, c *cache.Cache, namespace string) *Repository {
	r := &Repository{
		store:     store,
		cache:     c,
		namespace: namespace,
		now:       time.Now,
	}
	r.load()
	r.seedCounters()
	return r
}

func (r *Repository) shipmentsKey() string { return r.namespace + "-mock-shipments" }
func (r *Repository) vehiclesKey() string  { return r.namespace + "-mock-vehicles" }
func (r *Repository) driversKey() string   { return r.namespace + "-mock-drivers" }

// ─── Shipments ──────────────────────────────────────────────

// Shipments returns a copy of the shipment collection.
func (r *Repository) Shipments() []model.Shipment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Shipment(nil), r.shipments...)
}

// ShipmentByID returns the shipment with the given id, if present.
func (r *Repository) ShipmentByID(id string) (model.Shipment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shipments {
		if s.ID == id {
			return s, true
		}
	}
	return model.Shipment{}, false
}

// CreateShipment assigns an id and creation timestamp, appends the record,
// persists the collection, and invalidates dependent cache entries.
func (r *Repository) CreateShipment(s model.Shipment) model.Shipment {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = fmt.Sprintf("SH%03d", r.nextShipment)
	r.nextShipment++
	s.CreatedAt = r.now()

	r.shipments = append(r.shipments, s)
	r.persist(r.shipmentsKey(), r.shipments)
	r.invalidate("shipments")
	return s
}

// UpdateShipment shallow-merges the patch onto the stored record.
func (r *Repository) UpdateShipment(id string, patch model.ShipmentPatch) (model.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.shipments {
		if r.shipments[i].ID == id {
			patch.Apply(&r.shipments[i])
			r.persist(r.shipmentsKey(), r.shipments)
			r.invalidate("shipments")
			return r.shipments[i], nil
		}
	}
	return model.Shipment{}, fmt.Errorf("shipment %s: %w", id, ErrNotFound)
}

// DeleteShipment removes the record with the given id.
func (r *Repository) DeleteShipment(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.shipments {
		if r.shipments[i].ID == id {
			r.shipments = append(r.shipments[:i], r.shipments[i+1:]...)
			r.persist(r.shipmentsKey(), r.shipments)
			r.invalidate("shipments")
			return nil
		}
	}
	return fmt.Errorf("shipment %s: %w", id, ErrNotFound)
}

// ─── Vehicles ───────────────────────────────────────────────

// Vehicles returns a copy of the vehicle collection.
func (r *Repository) Vehicles() []model.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Vehicle(nil), r.vehicles...)
}

// VehicleByID returns the vehicle with the given id, if present.
func (r *Repository) VehicleByID(id string) (model.Vehicle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

// CreateVehicle assigns an id, appends the record, persists, and
// invalidates dependent cache entries.
func (r *Repository) CreateVehicle(v model.Vehicle) model.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()

	v.ID = fmt.Sprintf("VH%03d", r.nextVehicle)
	r.nextVehicle++

	r.vehicles = append(r.vehicles, v)
	r.persist(r.vehiclesKey(), r.vehicles)
	r.invalidate("vehicles")
	return v
}

// UpdateVehicle shallow-merges the patch onto the stored record.
func (r *Repository) UpdateVehicle(id string, patch model.VehiclePatch) (model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			patch.Apply(&r.vehicles[i])
			r.persist(r.vehiclesKey(), r.vehicles)
			r.invalidate("vehicles")
			return r.vehicles[i], nil
		}
	}
	return model.Vehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
}

// DeleteVehicle removes the record with the given id.
func (r *Repository) DeleteVehicle(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			r.persist(r.vehiclesKey(), r.vehicles)
			r.invalidate("vehicles")
			return nil
		}
	}
	return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
}

// ─── Drivers ────────────────────────────────────────────────

// Drivers returns a copy of the driver collection.
func (r *Repository) Drivers() []model.Driver {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Driver(nil), r.drivers...)
}

// DriverByID returns the driver with the given id, if present.
func (r *Repository) DriverByID(id string) (model.Driver, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drivers {
		if d.ID == id {
			return d, true
		}
	}
	return model.Driver{}, false
}

// CreateDriver assigns an id, appends the record, persists, and
// invalidates dependent cache entries.
func (r *Repository) CreateDriver(d model.Driver) model.Driver {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = fmt.Sprintf("DR%03d", r.nextDriver)
	r.nextDriver++

	r.drivers = append(r.drivers, d)
	r.persist(r.driversKey(), r.drivers)
	r.invalidate("drivers")
	return d
}

// UpdateDriver shallow-merges the patch onto the stored record.
func (r *Repository) UpdateDriver(id string, patch model.DriverPatch) (model.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drivers {
		if r.drivers[i].ID == id {
			patch.Apply(&r.drivers[i])
			r.persist(r.driversKey(), r.drivers)
			r.invalidate("drivers")
			return r.drivers[i], nil
		}
	}
	return model.Driver{}, fmt.Errorf("driver %s: %w", id, ErrNotFound)
}

// DeleteDriver removes the record with the given id.
func (r *Repository) DeleteDriver(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drivers {
		if r.drivers[i].ID == id {
			r.drivers = append(r.drivers[:i], r.drivers[i+1:]...)
			r.persist(r.driversKey(), r.drivers)
			r.invalidate("drivers")
			return nil
		}
	}
	return fmt.Errorf("driver %s: %w", id, ErrNotFound)
}

// ─── Reset ──────────────────────────────────────────────────

// Reset discards the current collections, restores the bundled fixtures,
// persists them, and invalidates every cache family.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadFixturesLocked()
	r.persistAllLocked()
	r.invalidate("shipments")
	r.invalidate("vehicles")
	r.invalidate("drivers")
	r.seedCountersLocked()
	log.Printf("[repository] data reset to fixtures: %d shipments, %d vehicles, %d drivers",
		len(r.shipments), len(r.vehicles), len(r.drivers))
}

// ─── Seeding & persistence ──────────────────────────────────

func (r *Repository) load() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadSnapshotLocked() {
		log.Printf("[repository] loaded from storage: %d shipments, %d vehicles, %d drivers",
			len(r.shipments), len(r.vehicles), len(r.drivers))
		return
	}

	r.loadFixturesLocked()
	r.persistAllLocked()
	log.Printf("[repository] seeded from fixtures: %d shipments, %d vehicles, %d drivers",
		len(r.shipments), len(r.vehicles), len(r.drivers))
}

// loadSnapshotLocked restores all three collections from durable storage.
// All three keys must be present and decodable; a partial snapshot falls
// back to fixtures so the collections never mix sources.
func (r *Repository) loadSnapshotLocked() bool {
	shipments, ok := loadCollection[model.Shipment](r.store, r.shipmentsKey())
	if !ok {
		return false
	}
	vehicles, ok := loadCollection[model.Vehicle](r.store, r.vehiclesKey())
	if !ok {
		return false
	}
	drivers, ok := loadCollection[model.Driver](r.store, r.driversKey())
	if !ok {
		return false
	}

	r.shipments = shipments
	r.vehicles = vehicles
	r.drivers = drivers
	return true
}

// loadFixturesLocked loads the bundled dataset, falling back to the
// built-in defaults if the fixtures cannot be decoded.
func (r *Repository) loadFixturesLocked() {
	shipments, errS := seed.Shipments()
	vehicles, errV := seed.Vehicles()
	drivers, errD := seed.Drivers()
	if errS != nil || errV != nil || errD != nil {
		log.Printf("[repository] fixture load failed (%v, %v, %v), using defaults", errS, errV, errD)
		r.shipments, r.vehicles, r.drivers = defaultDataset()
		return
	}
	r.shipments = shipments
	r.vehicles = vehicles
	r.drivers = drivers
}

func (r *Repository) persistAllLocked() {
	r.persist(r.shipmentsKey(), r.shipments)
	r.persist(r.vehiclesKey(), r.vehicles)
	r.persist(r.driversKey(), r.drivers)
}

// persist writes one collection snapshot to durable storage. Failures are
// logged and suppressed: the in-memory collection is already mutated and
// stays authoritative for the rest of the process lifetime.
func (r *Repository) persist(key string, items any) {
	blob, err := json.Marshal(map[string]any{
		"version": snapshotVersion,
		"items":   items,
	})
	if err != nil {
		log.Printf("[repository] encode %s: %v", key, err)
		return
	}
	if err := r.store.Put(key, blob); err != nil {
		log.Printf("[repository] persist %s: %v", key, err)
	}
}

func loadCollection[T any](store *storage.Store, key string) ([]T, bool) {
	blob, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[repository] load %s: %v", key, err)
		}
		return nil, false
	}
	var snap collectionSnapshot[T]
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("[repository] corrupt snapshot %s: %v", key, err)
		return nil, false
	}
	if snap.Version != snapshotVersion {
		log.Printf("[repository] snapshot %s version %d unsupported", key, snap.Version)
		return nil, false
	}
	if snap.Items == nil {
		snap.Items = []T{}
	}
	return snap.Items, true
}

// invalidate clears the entity's cache family plus the dashboard stats,
// which aggregate over all three collections.
func (r *Repository) invalidate(pattern string) {
	r.cache.InvalidatePattern(pattern)
	r.cache.InvalidatePattern("dashboard-stats")
}

func (r *Repository) seedCounters() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedCountersLocked()
}

func (r *Repository) seedCountersLocked() {
	r.nextShipment = nextCounter("SH", shipmentIDs(r.shipments))
	r.nextVehicle = nextCounter("VH", vehicleIDs(r.vehicles))
	r.nextDriver = nextCounter("DR", driverIDs(r.drivers))
}

func shipmentIDs(items []model.Shipment) []string {
	ids := make([]string, len(items))
	for i, s := range items {
		ids[i] = s.ID
	}
	return ids
}

func vehicleIDs(items []model.Vehicle) []string {
	ids := make([]string, len(items))
	for i, v := range items {
		ids[i] = v.ID
	}
	return ids
}

func driverIDs(items []model.Driver) []string {
	ids := make([]string, len(items))
	for i, d := range items {
		ids[i] = d.ID
	}
	return ids
}

// nextCounter returns one past the highest numeric suffix among ids with
// the given prefix, so generated ids never collide with existing ones.
func nextCounter(prefix string, ids []string) int {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}
