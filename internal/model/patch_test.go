package model

import (
	"testing"
	"time"
)

func TestShipmentPatchAppliesSetFieldsOnly(t *testing.T) {
	s := Shipment{
		TrackingNumber: "TN-1",
		Status:         ShipmentPending,
		Priority:       PriorityLow,
		Value:          1000,
	}

	status := ShipmentInTransit
	value := 2500.0
	ShipmentPatch{Status: &status, Value: &value}.Apply(&s)

	if s.Status != ShipmentInTransit {
		t.Errorf("Status = %q, want in_transit", s.Status)
	}
	if s.Value != 2500 {
		t.Errorf("Value = %v, want 2500", s.Value)
	}
	if s.TrackingNumber != "TN-1" || s.Priority != PriorityLow {
		t.Error("unset patch fields overwrote existing values")
	}
}

func TestShipmentPatchSetsOptionalTimestamps(t *testing.T) {
	s := Shipment{}
	pickup := time.Date(2025, 1, 18, 14, 15, 0, 0, time.UTC)

	ShipmentPatch{ActualPickup: &pickup}.Apply(&s)

	if s.ActualPickup == nil || !s.ActualPickup.Equal(pickup) {
		t.Errorf("ActualPickup = %v, want %v", s.ActualPickup, pickup)
	}
	if s.ActualDelivery != nil {
		t.Error("ActualDelivery was set by an unrelated patch field")
	}
}

func TestEmptyShipmentPatchIsNoop(t *testing.T) {
	s := Shipment{TrackingNumber: "TN-1", Status: ShipmentDelivered, Notes: []string{"a"}}
	before := s

	ShipmentPatch{}.Apply(&s)

	if s.TrackingNumber != before.TrackingNumber || s.Status != before.Status || len(s.Notes) != 1 {
		t.Errorf("empty patch changed the record: %+v", s)
	}
}

func TestDriverPatchPreservesCounters(t *testing.T) {
	d := Driver{Name: "Carlos", Rating: 4.8, TotalDeliveries: 145, OnTimeDeliveries: 138}

	rating := 4.9
	DriverPatch{Rating: &rating}.Apply(&d)

	if d.Rating != 4.9 {
		t.Errorf("Rating = %v, want 4.9", d.Rating)
	}
	if d.TotalDeliveries != 145 || d.OnTimeDeliveries != 138 {
		t.Error("delivery counters changed under a rating-only patch")
	}
}

func TestVehiclePatchCanSetZeroValues(t *testing.T) {
	v := Vehicle{GPSEnabled: true, Mileage: 45000}

	gps := false
	mileage := 0.0
	VehiclePatch{GPSEnabled: &gps, Mileage: &mileage}.Apply(&v)

	if v.GPSEnabled {
		t.Error("GPSEnabled = true, an explicit false must stick")
	}
	if v.Mileage != 0 {
		t.Errorf("Mileage = %v, an explicit zero must stick", v.Mileage)
	}
}
