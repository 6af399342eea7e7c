package repository

import (
	"time"

	"github.com/dmolina/fleetdesk/internal/model"
)

// defaultDataset is the last-resort seed used when the bundled fixtures
// cannot be decoded. One record per collection keeps the dashboard and
// the list views non-empty.
func defaultDataset() ([]model.Shipment, []model.Vehicle, []model.Driver) {
	created := time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC)
	pickup := created.Add(4 * time.Hour)
	actualPickup := pickup.Add(15 * time.Minute)

	shipments := []model.Shipment{{
		ID:             "SH001",
		TrackingNumber: "TN202501001",
		Origin: model.Address{
			Street: "Av. Insurgentes 123", City: "Lima", State: "Lima",
			ZipCode: "01000", Country: "Peru",
		},
		Destination: model.Address{
			Street: "Av. Tacna 258", City: "Tacna", State: "Tacna",
			ZipCode: "23001", Country: "Peru",
		},
		Status:            model.ShipmentInTransit,
		Priority:          model.PriorityHigh,
		CreatedAt:         created,
		ScheduledPickup:   pickup,
		ActualPickup:      &actualPickup,
		EstimatedDelivery: created.Add(54 * time.Hour),
		Weight:            150.5,
		Volume:            2.3,
		Value:             15000,
		Currency:          "PEN",
		Goods: []model.CargoItem{{
			ID: "ITEM001", Description: "Electronic equipment",
			Quantity: 5, Unit: "pcs", Weight: 150.5, Value: 15000,
			Category: "Electronics", Fragile: true,
		}},
		DriverID:  "DR001",
		VehicleID: "VH001",
		Customer: model.Customer{
			ID: "CU001", Name: "Juan Perez", Email: "juan.perez@email.com",
			Phone: "+51 555 123 4567", Company: "Tech Solutions SA",
			Address: model.Address{
				Street: "Av. Insurgentes 123", City: "Lima", State: "Lima",
				ZipCode: "01000", Country: "Peru",
			},
			AccountType: model.AccountBusiness,
		},
		Route: model.RouteSummary{Distance: 1293, EstimatedTime: 1200},
		Notes: []string{"Deliver during office hours only"},
	}}

	vehicles := []model.Vehicle{{
		ID:                 "VH001",
		LicensePlate:       "ABC-123",
		Model:              "Actros",
		Brand:              "Mercedes-Benz",
		Year:               2022,
		Type:               model.VehicleTruck,
		Capacity:           5000,
		FuelType:           model.FuelDiesel,
		Status:             model.VehicleInUse,
		Mileage:            45000,
		LastMaintenance:    time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		NextMaintenance:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		RegistrationExpiry: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		InsuranceExpiry:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		CurrentDriverID:    "DR001",
		GPSEnabled:         true,
	}}

	drivers := []model.Driver{{
		ID:               "DR001",
		Name:             "Carlos Gonzalez",
		License:          "LIC123456789",
		Phone:            "+51 555 987 6543",
		Email:            "carlos.gonzalez@transport.com",
		Status:           model.DriverOnDelivery,
		CurrentVehicle:   "VH001",
		Rating:           4.8,
		TotalDeliveries:  145,
		OnTimeDeliveries: 138,
	}}

	return shipments, vehicles, drivers
}
