package widget

import (
	"errors"
	"testing"
)

func TestComputeViewport(t *testing.T) {
	coords := []Coordinate{
		{Lat: 10, Lng: -40},
		{Lat: 20, Lng: -20},
		{Lat: 15, Lng: -30},
	}

	vp, err := ComputeViewport(coords)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Center is the arithmetic mean of the points.
	if vp.Center.Lat != 15 || vp.Center.Lng != -30 {
		t.Errorf("Expected center (15, -30), got (%f, %f)", vp.Center.Lat, vp.Center.Lng)
	}

	// Bounds hug the extremes.
	if vp.Bounds.LatMin != 10 || vp.Bounds.LatMax != 20 {
		t.Errorf("Expected lat bounds [10, 20], got [%f, %f]", vp.Bounds.LatMin, vp.Bounds.LatMax)
	}
	if vp.Bounds.LngMin != -40 || vp.Bounds.LngMax != -20 {
		t.Errorf("Expected lng bounds [-40, -20], got [%f, %f]", vp.Bounds.LngMin, vp.Bounds.LngMax)
	}

	// Max bounds add 20% of each span per side: lat span 10 -> 2, lng span 20 -> 4.
	if vp.MaxBounds.LatMin != 8 || vp.MaxBounds.LatMax != 22 {
		t.Errorf("Expected padded lat bounds [8, 22], got [%f, %f]", vp.MaxBounds.LatMin, vp.MaxBounds.LatMax)
	}
	if vp.MaxBounds.LngMin != -44 || vp.MaxBounds.LngMax != -16 {
		t.Errorf("Expected padded lng bounds [-44, -16], got [%f, %f]", vp.MaxBounds.LngMin, vp.MaxBounds.LngMax)
	}
}

func TestComputeViewport_MeanCenterNotMidpoint(t *testing.T) {
	// Two markers clustered north, one far south: the mean sits north of the
	// bounds midpoint.
	coords := []Coordinate{
		{Lat: 40, Lng: 0},
		{Lat: 41, Lng: 0},
		{Lat: 10, Lng: 0},
	}

	vp, err := ComputeViewport(coords)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	wantLat := (40.0 + 41.0 + 10.0) / 3.0
	if vp.Center.Lat != wantLat {
		t.Errorf("Expected mean center lat %f, got %f", wantLat, vp.Center.Lat)
	}

	midpoint := (vp.Bounds.LatMin + vp.Bounds.LatMax) / 2
	if vp.Center.Lat == midpoint {
		t.Error("Center should be the arithmetic mean, not the bounds midpoint")
	}
}

func TestComputeViewport_SingleMarker(t *testing.T) {
	vp, err := ComputeViewport([]Coordinate{{Lat: 5, Lng: 7}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if vp.Center.Lat != 5 || vp.Center.Lng != 7 {
		t.Errorf("Expected center (5, 7), got (%f, %f)", vp.Center.Lat, vp.Center.Lng)
	}

	// Degenerate box: zero span means zero pad, so panning is pinned.
	if vp.MaxBounds.LatMin != 5 || vp.MaxBounds.LatMax != 5 {
		t.Errorf("Expected degenerate padded lat bounds, got [%f, %f]", vp.MaxBounds.LatMin, vp.MaxBounds.LatMax)
	}
}

func TestComputeViewport_Empty(t *testing.T) {
	_, err := ComputeViewport(nil)

	if !errors.Is(err, ErrNoMarkers) {
		t.Fatalf("Expected ErrNoMarkers, got %v", err)
	}
}
