// Package model contains domain models for the fleet management core.
// Every entity is a plain value object; behavior lives in the repository,
// service, and store layers.
package model

import "time"

// ─── Enums ──────────────────────────────────────────────────

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCancelled ShipmentStatus = "cancelled"
	ShipmentDelayed   ShipmentStatus = "delayed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type VehicleType string

const (
	VehicleTruck   VehicleType = "truck"
	VehicleVan     VehicleType = "van"
	VehicleTrailer VehicleType = "trailer"
	VehiclePickup  VehicleType = "pickup"
)

type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelGasoline FuelType = "gasoline"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in-use"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleOffline     VehicleStatus = "offline"
)

type DriverStatus string

const (
	DriverAvailable  DriverStatus = "available"
	DriverOnDelivery DriverStatus = "on-delivery"
	DriverOffDuty    DriverStatus = "off-duty"
	DriverSuspended  DriverStatus = "suspended"
)

type AccountType string

const (
	AccountIndividual AccountType = "individual"
	AccountBusiness   AccountType = "business"
)

type RoutePointType string

const (
	PointPickup   RoutePointType = "pickup"
	PointDelivery RoutePointType = "delivery"
	PointWaypoint RoutePointType = "waypoint"
)

type RoutePointStatus string

const (
	PointPending   RoutePointStatus = "pending"
	PointCompleted RoutePointStatus = "completed"
	PointSkipped   RoutePointStatus = "skipped"
)

// ─── Value Objects ──────────────────────────────────────────

// Coordinates is a WGS-84 geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address is a postal address, optionally geocoded.
type Address struct {
	Street      string       `json:"street"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// CargoItem is a single line of goods inside a shipment.
type CargoItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
	Weight      float64 `json:"weight"`
	Value       float64 `json:"value"`
	Category    string  `json:"category"`
	Fragile     bool    `json:"fragile"`
	Hazardous   bool    `json:"hazardous"`
}

// Customer is embedded in a shipment; it is not an independent collection.
type Customer struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Company     string      `json:"company,omitempty"`
	Address     Address     `json:"address"`
	AccountType AccountType `json:"accountType"`
}

// RouteSummary is the coarse distance/time estimate for a shipment.
// Distance is in kilometers, EstimatedTime in minutes.
type RouteSummary struct {
	Distance      float64 `json:"distance"`
	EstimatedTime float64 `json:"estimatedTime"`
}

// RoutePoint is one ordered stop on a multi-stop route.
type RoutePoint struct {
	ID               string           `json:"id"`
	Address          Address          `json:"address"`
	Sequence         int              `json:"sequence"`
	Type             RoutePointType   `json:"type"`
	EstimatedArrival time.Time        `json:"estimatedArrival"`
	ActualArrival    *time.Time       `json:"actualArrival,omitempty"`
	Status           RoutePointStatus `json:"status"`
}

// ─── Entities ───────────────────────────────────────────────

// Shipment is the central entity of the system. The ID and CreatedAt
// fields are assigned by the repository on create.
//
// DriverID and VehicleID are weak references — lookup keys into the
// other collections with no enforced referential integrity.
type Shipment struct {
	ID                string         `json:"id"`
	TrackingNumber    string         `json:"trackingNumber"`
	Origin            Address        `json:"origin"`
	Destination       Address        `json:"destination"`
	Status            ShipmentStatus `json:"status"`
	Priority          Priority       `json:"priority"`
	CreatedAt         time.Time      `json:"createdAt"`
	ScheduledPickup   time.Time      `json:"scheduledPickup"`
	ActualPickup      *time.Time     `json:"actualPickup,omitempty"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	ActualDelivery    *time.Time     `json:"actualDelivery,omitempty"`
	Weight            float64        `json:"weight"`
	Volume            float64        `json:"volume"`
	Value             float64        `json:"value"`
	Currency          string         `json:"currency"`
	Goods             []CargoItem    `json:"goods"`
	DriverID          string         `json:"driverId,omitempty"`
	VehicleID         string         `json:"vehicleId,omitempty"`
	Customer          Customer       `json:"customer"`
	Route             RouteSummary   `json:"route"`
	Notes             []string       `json:"notes"`
	RoutePoints       []RoutePoint   `json:"routePoints,omitempty"`
}

// Vehicle is a fleet unit. CurrentDriverID is the weak counterpart of
// Driver.CurrentVehicle; the two are independent keys and the storage
// layer never reconciles them.
type Vehicle struct {
	ID                 string        `json:"id"`
	LicensePlate       string        `json:"licensePlate"`
	Model              string        `json:"model"`
	Brand              string        `json:"brand"`
	Year               int           `json:"year"`
	Type               VehicleType   `json:"type"`
	Capacity           float64       `json:"capacity"`
	FuelType           FuelType      `json:"fuelType"`
	Status             VehicleStatus `json:"status"`
	Mileage            float64       `json:"mileage"`
	LastMaintenance    time.Time     `json:"lastMaintenance"`
	NextMaintenance    time.Time     `json:"nextMaintenance"`
	RegistrationExpiry time.Time     `json:"registrationExpiry"`
	InsuranceExpiry    time.Time     `json:"insuranceExpiry"`
	CurrentDriverID    string        `json:"currentDriverId,omitempty"`
	GPSEnabled         bool          `json:"gpsEnabled"`
}

// Driver is a fleet operator. Rating ranges 0–5; OnTimeDeliveries should
// not exceed TotalDeliveries, but that invariant belongs to the edit
// layer, not to storage.
type Driver struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	License          string       `json:"license"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	Status           DriverStatus `json:"status"`
	CurrentVehicle   string       `json:"currentVehicle,omitempty"`
	Rating           float64      `json:"rating"`
	TotalDeliveries  int          `json:"totalDeliveries"`
	OnTimeDeliveries int          `json:"onTimeDeliveries"`
}

// ─── Derived Aggregates ─────────────────────────────────────

// DashboardStats is a pure aggregate over the three collections.
// It has no identity and no persistence; it is recomputed on demand.
type DashboardStats struct {
	TotalShipments      int     `json:"totalShipments"`
	ActiveShipments     int     `json:"activeShipments"`
	DeliveredShipments  int     `json:"deliveredShipments"`
	PendingShipments    int     `json:"pendingShipments"`
	TotalRevenue        float64 `json:"totalRevenue"`
	ActiveVehicles      int     `json:"activeVehicles"`
	AvailableDrivers    int     `json:"availableDrivers"`
	MaintenanceVehicles int     `json:"maintenanceVehicles"`
}

// ─── Filters & Responses ────────────────────────────────────

// DateRange bounds a filter to [Start, End].
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FilterOptions are the shipment list filter criteria. Empty slices and
// strings match everything; criteria combine with AND.
type FilterOptions struct {
	Status     []ShipmentStatus `json:"status,omitempty"`
	Priority   []Priority       `json:"priority,omitempty"`
	DateRange  *DateRange       `json:"dateRange,omitempty"`
	SearchTerm string           `json:"searchTerm,omitempty"`
}

// IsZero reports whether no criteria are set.
func (f FilterOptions) IsZero() bool {
	return len(f.Status) == 0 && len(f.Priority) == 0 &&
		f.DateRange == nil && f.SearchTerm == ""
}

// Response is the envelope returned by every facade operation. Success is
// true on every non-error path; failures surface as returned errors, not
// as Success=false.
type Response[T any] struct {
	Data     T      `json:"data"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Total    int    `json:"total,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

// OK wraps data in a successful response.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Success: true, Message: message}
}
