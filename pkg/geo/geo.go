// Package geo estimates route distance and travel time between shipment
// addresses.
//
// Distances use the Haversine formula on WGS-84 coordinates; travel time
// assumes a constant average highway speed. Good enough for route
// summaries on a dashboard — a routing engine would replace this in a
// system with real dispatching.
package geo

import (
	"math"

	"github.com/dmolina/fleetdesk/internal/model"
)

const (
	// EarthRadiusKm is the mean radius of Earth in kilometers.
	EarthRadiusKm = 6371.0

	// AverageSpeedKmph is the assumed average long-haul driving speed.
	AverageSpeedKmph = 60.0
)

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b model.Coordinates) float64 {
	dLat := degToRad(b.Latitude - a.Latitude)
	dLon := degToRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Latitude))*math.Cos(degToRad(b.Latitude))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// EstimateTimeMinutes returns the estimated direct travel time between
// two points in minutes, assuming AverageSpeedKmph.
func EstimateTimeMinutes(a, b model.Coordinates) float64 {
	return (HaversineKm(a, b) / AverageSpeedKmph) * 60.0
}

// RouteSummary estimates the distance and travel time between two
// addresses. It reports false when either address lacks coordinates —
// the caller keeps whatever summary it already has.
func RouteSummary(origin, destination model.Address) (model.RouteSummary, bool) {
	if origin.Coordinates == nil || destination.Coordinates == nil {
		return model.RouteSummary{}, false
	}
	distance := HaversineKm(*origin.Coordinates, *destination.Coordinates)
	return model.RouteSummary{
		Distance:      math.Round(distance*100) / 100,
		EstimatedTime: math.Round((distance/AverageSpeedKmph)*60*10) / 10,
	}, true
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
