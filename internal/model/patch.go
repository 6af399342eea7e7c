package model

import "time"

// Patch types carry partial updates. A nil field means "leave untouched";
// a set field is shallow-merged onto the stored record, matching the
// update semantics of a PATCH endpoint.

// ShipmentPatch is a partial Shipment update.
type ShipmentPatch struct {
	TrackingNumber    *string         `json:"trackingNumber,omitempty"`
	Origin            *Address        `json:"origin,omitempty"`
	Destination       *Address        `json:"destination,omitempty"`
	Status            *ShipmentStatus `json:"status,omitempty"`
	Priority          *Priority       `json:"priority,omitempty"`
	ScheduledPickup   *time.Time      `json:"scheduledPickup,omitempty"`
	ActualPickup      *time.Time      `json:"actualPickup,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
	Weight            *float64        `json:"weight,omitempty"`
	Volume            *float64        `json:"volume,omitempty"`
	Value             *float64        `json:"value,omitempty"`
	Currency          *string         `json:"currency,omitempty"`
	Goods             []CargoItem     `json:"goods,omitempty"`
	DriverID          *string         `json:"driverId,omitempty"`
	VehicleID         *string         `json:"vehicleId,omitempty"`
	Customer          *Customer       `json:"customer,omitempty"`
	Route             *RouteSummary   `json:"route,omitempty"`
	Notes             []string        `json:"notes,omitempty"`
	RoutePoints       []RoutePoint    `json:"routePoints,omitempty"`
}

// Apply merges the patch onto s, field by field.
func (p ShipmentPatch) Apply(s *Shipment) {
	if p.TrackingNumber != nil {
		s.TrackingNumber = *p.TrackingNumber
	}
	if p.Origin != nil {
		s.Origin = *p.Origin
	}
	if p.Destination != nil {
		s.Destination = *p.Destination
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.ScheduledPickup != nil {
		s.ScheduledPickup = *p.ScheduledPickup
	}
	if p.ActualPickup != nil {
		t := *p.ActualPickup
		s.ActualPickup = &t
	}
	if p.EstimatedDelivery != nil {
		s.EstimatedDelivery = *p.EstimatedDelivery
	}
	if p.ActualDelivery != nil {
		t := *p.ActualDelivery
		s.ActualDelivery = &t
	}
	if p.Weight != nil {
		s.Weight = *p.Weight
	}
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.Value != nil {
		s.Value = *p.Value
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Goods != nil {
		s.Goods = p.Goods
	}
	if p.DriverID != nil {
		s.DriverID = *p.DriverID
	}
	if p.VehicleID != nil {
		s.VehicleID = *p.VehicleID
	}
	if p.Customer != nil {
		s.Customer = *p.Customer
	}
	if p.Route != nil {
		s.Route = *p.Route
	}
	if p.Notes != nil {
		s.Notes = p.Notes
	}
	if p.RoutePoints != nil {
		s.RoutePoints = p.RoutePoints
	}
}

// VehiclePatch is a partial Vehicle update.
type VehiclePatch struct {
	LicensePlate       *string        `json:"licensePlate,omitempty"`
	Model              *string        `json:"model,omitempty"`
	Brand              *string        `json:"brand,omitempty"`
	Year               *int           `json:"year,omitempty"`
	Type               *VehicleType   `json:"type,omitempty"`
	Capacity           *float64       `json:"capacity,omitempty"`
	FuelType           *FuelType      `json:"fuelType,omitempty"`
	Status             *VehicleStatus `json:"status,omitempty"`
	Mileage            *float64       `json:"mileage,omitempty"`
	LastMaintenance    *time.Time     `json:"lastMaintenance,omitempty"`
	NextMaintenance    *time.Time     `json:"nextMaintenance,omitempty"`
	RegistrationExpiry *time.Time     `json:"registrationExpiry,omitempty"`
	InsuranceExpiry    *time.Time     `json:"insuranceExpiry,omitempty"`
	CurrentDriverID    *string        `json:"currentDriverId,omitempty"`
	GPSEnabled         *bool          `json:"gpsEnabled,omitempty"`
}

// Apply merges the patch onto v, field by field.
func (p VehiclePatch) Apply(v *Vehicle) {
	if p.LicensePlate != nil {
		v.LicensePlate = *p.LicensePlate
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Brand != nil {
		v.Brand = *p.Brand
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.Type != nil {
		v.Type = *p.Type
	}
	if p.Capacity != nil {
		v.Capacity = *p.Capacity
	}
	if p.FuelType != nil {
		v.FuelType = *p.FuelType
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.Mileage != nil {
		v.Mileage = *p.Mileage
	}
	if p.LastMaintenance != nil {
		v.LastMaintenance = *p.LastMaintenance
	}
	if p.NextMaintenance != nil {
		v.NextMaintenance = *p.NextMaintenance
	}
	if p.RegistrationExpiry != nil {
		v.RegistrationExpiry = *p.RegistrationExpiry
	}
	if p.InsuranceExpiry != nil {
		v.InsuranceExpiry = *p.InsuranceExpiry
	}
	if p.CurrentDriverID != nil {
		v.CurrentDriverID = *p.CurrentDriverID
	}
	if p.GPSEnabled != nil {
		v.GPSEnabled = *p.GPSEnabled
	}
}

// DriverPatch is a partial Driver update.
type DriverPatch struct {
	Name             *string       `json:"name,omitempty"`
	License          *string       `json:"license,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
	Email            *string       `json:"email,omitempty"`
	Status           *DriverStatus `json:"status,omitempty"`
	CurrentVehicle   *string       `json:"currentVehicle,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	TotalDeliveries  *int          `json:"totalDeliveries,omitempty"`
	OnTimeDeliveries *int          `json:"onTimeDeliveries,omitempty"`
}

// Apply merges the patch onto d, field by field.
func (p DriverPatch) Apply(d *Driver) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.License != nil {
		d.License = *p.License
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.CurrentVehicle != nil {
		d.CurrentVehicle = *p.CurrentVehicle
	}
	if p.Rating != nil {
		d.Rating = *p.Rating
	}
	if p.TotalDeliveries != nil {
		d.TotalDeliveries = *p.TotalDeliveries
	}
	if p.OnTimeDeliveries != nil {
		d.OnTimeDeliveries = *p.OnTimeDeliveries
	}
}
