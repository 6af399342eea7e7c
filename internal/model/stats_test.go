package model

import "testing"

func TestComputeDashboardStatsCountsByStatus(t *testing.T) {
	shipments := []Shipment{
		{Status: ShipmentPending, Value: 1000},
		{Status: ShipmentDelivered, Value: 2000},
		{Status: ShipmentInTransit, Value: 500},
		{Status: ShipmentCancelled, Value: 300},
	}

	stats := ComputeDashboardStats(shipments, nil, nil)

	if stats.TotalShipments != 4 {
		t.Errorf("TotalShipments = %d, want 4", stats.TotalShipments)
	}
	if stats.PendingShipments != 1 || stats.ActiveShipments != 1 || stats.DeliveredShipments != 1 {
		t.Errorf("partition counts = %d/%d/%d, want 1/1/1",
			stats.PendingShipments, stats.ActiveShipments, stats.DeliveredShipments)
	}
}

func TestComputeDashboardStatsSumsRevenueAcrossAllStatuses(t *testing.T) {
	shipments := []Shipment{
		{Status: ShipmentPending, Value: 1000},
		{Status: ShipmentCancelled, Value: 2000},
	}

	stats := ComputeDashboardStats(shipments, nil, nil)
	if stats.TotalRevenue != 3000 {
		t.Errorf("TotalRevenue = %v, want 3000 regardless of status", stats.TotalRevenue)
	}
}

func TestComputeDashboardStatsVehicleCounters(t *testing.T) {
	vehicles := []Vehicle{
		{Status: VehicleAvailable},
		{Status: VehicleInUse},
		{Status: VehicleMaintenance},
		{Status: VehicleOffline},
	}

	stats := ComputeDashboardStats(nil, vehicles, nil)
	if stats.ActiveVehicles != 2 {
		t.Errorf("ActiveVehicles = %d, want available + in-use = 2", stats.ActiveVehicles)
	}
	if stats.MaintenanceVehicles != 1 {
		t.Errorf("MaintenanceVehicles = %d, want 1", stats.MaintenanceVehicles)
	}
}

func TestComputeDashboardStatsDriverCounters(t *testing.T) {
	drivers := []Driver{
		{Status: DriverAvailable},
		{Status: DriverOnDelivery},
		{Status: DriverOffDuty},
		{Status: DriverSuspended},
	}

	stats := ComputeDashboardStats(nil, nil, drivers)
	if stats.AvailableDrivers != 2 {
		t.Errorf("AvailableDrivers = %d, want available + on-delivery = 2", stats.AvailableDrivers)
	}
}

func TestComputeDashboardStatsEmptyCollections(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, nil)
	if stats != (DashboardStats{}) {
		t.Errorf("stats over empty collections = %+v, want all zeros", stats)
	}
}
