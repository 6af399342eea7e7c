package geo

import (
	"math"
	"testing"

	"github.com/dmolina/fleetdesk/internal/model"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	p := model.Coordinates{Latitude: -12.0464, Longitude: -77.0428}
	if d := HaversineKm(p, p); d != 0 {
		t.Errorf("HaversineKm(p, p) = %v, want 0", d)
	}
}

func TestHaversineOneDegreeAtEquator(t *testing.T) {
	a := model.Coordinates{Latitude: 0, Longitude: 0}
	b := model.Coordinates{Latitude: 0, Longitude: 1}

	// One degree of longitude at the equator is about 111.19 km.
	d := HaversineKm(a, b)
	if math.Abs(d-111.19) > 0.1 {
		t.Errorf("HaversineKm = %v, want ~111.19", d)
	}
}

func TestHaversineIsSymmetric(t *testing.T) {
	a := model.Coordinates{Latitude: -12.0464, Longitude: -77.0428}
	b := model.Coordinates{Latitude: -16.409, Longitude: -71.5375}
	if HaversineKm(a, b) != HaversineKm(b, a) {
		t.Error("distance depends on direction")
	}
}

func TestEstimateTimeMatchesSpeed(t *testing.T) {
	a := model.Coordinates{Latitude: 0, Longitude: 0}
	b := model.Coordinates{Latitude: 0, Longitude: 1}

	wantMinutes := HaversineKm(a, b) / AverageSpeedKmph * 60
	if got := EstimateTimeMinutes(a, b); math.Abs(got-wantMinutes) > 1e-9 {
		t.Errorf("EstimateTimeMinutes = %v, want %v", got, wantMinutes)
	}
}

func TestRouteSummaryRequiresBothCoordinates(t *testing.T) {
	geocoded := model.Address{
		City:        "Lima",
		Coordinates: &model.Coordinates{Latitude: -12.0464, Longitude: -77.0428},
	}
	plain := model.Address{City: "Cusco"}

	if _, ok := RouteSummary(geocoded, plain); ok {
		t.Error("RouteSummary succeeded without destination coordinates")
	}
	if _, ok := RouteSummary(plain, geocoded); ok {
		t.Error("RouteSummary succeeded without origin coordinates")
	}
}

func TestRouteSummaryRoundsEstimates(t *testing.T) {
	origin := model.Address{
		Coordinates: &model.Coordinates{Latitude: -12.0464, Longitude: -77.0428},
	}
	destination := model.Address{
		Coordinates: &model.Coordinates{Latitude: -16.409, Longitude: -71.5375},
	}

	summary, ok := RouteSummary(origin, destination)
	if !ok {
		t.Fatal("RouteSummary failed for geocoded addresses")
	}
	if summary.Distance != math.Round(summary.Distance*100)/100 {
		t.Errorf("Distance = %v, want two decimal places", summary.Distance)
	}
	if summary.EstimatedTime != math.Round(summary.EstimatedTime*10)/10 {
		t.Errorf("EstimatedTime = %v, want one decimal place", summary.EstimatedTime)
	}
	if summary.Distance <= 0 || summary.EstimatedTime <= 0 {
		t.Errorf("summary = %+v, want positive estimates", summary)
	}
}
