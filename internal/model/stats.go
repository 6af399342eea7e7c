package model

// ComputeDashboardStats aggregates the three collections into the
// dashboard counters. Both the API facade and the dashboard store derive
// their numbers through this one function, so the cached server-side
// aggregate and the locally computed one always agree on equal inputs.
func ComputeDashboardStats(shipments []Shipment, vehicles []Vehicle, drivers []Driver) DashboardStats {
	stats := DashboardStats{TotalShipments: len(shipments)}

	for _, s := range shipments {
		switch s.Status {
		case ShipmentInTransit:
			stats.ActiveShipments++
		case ShipmentDelivered:
			stats.DeliveredShipments++
		case ShipmentPending:
			stats.PendingShipments++
		}
		stats.TotalRevenue += s.Value
	}

	for _, v := range vehicles {
		switch v.Status {
		case VehicleAvailable, VehicleInUse:
			stats.ActiveVehicles++
		case VehicleMaintenance:
			stats.MaintenanceVehicles++
		}
	}

	for _, d := range drivers {
		if d.Status == DriverAvailable || d.Status == DriverOnDelivery {
			stats.AvailableDrivers++
		}
	}

	return stats
}
