package widget

import (
	"errors"
	"testing"

	"propmap-server/config"
	"propmap-server/models"
)

func builderListings() []models.Listing {
	return []models.Listing{
		{
			ID: "prop-1", Name: "Cedar Creek Cabin",
			Latitude: "10", Longitude: "-40",
			PriceMin: 100, PriceMax: 250,
			IsLive: true, BookingActive: true,
		},
		{
			ID: "prop-2", Name: "Lakefront Lodge",
			Latitude: "20", Longitude: "-20",
			PriceMin: 0, PriceMax: 150,
			IsLive: true, BookingActive: true,
		},
		{
			ID: "prop-3", Name: "Desert Hideaway",
			Latitude: "15", Longitude: "-30",
			PriceMin: 90, PriceMax: 0,
			IsLive: true, BookingActive: true,
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder("properties-map", NewMarkerClusterCapability())

	model, err := builder.Build(builderListings())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if model.ContainerID != "properties-map" {
		t.Errorf("Expected container 'properties-map', got %q", model.ContainerID)
	}
	if len(model.Markers) != 3 {
		t.Fatalf("Expected 3 markers, got %d", len(model.Markers))
	}

	// Viewport follows the parsed markers.
	if model.Center.Lat != 15 || model.Center.Lng != -30 {
		t.Errorf("Expected center (15, -30), got (%f, %f)", model.Center.Lat, model.Center.Lng)
	}
	if model.FitBounds.LatMin != 10 || model.FitBounds.LatMax != 20 {
		t.Errorf("Unexpected fit bounds: %+v", model.FitBounds)
	}
	if model.MaxBounds.LatMin != 8 || model.MaxBounds.LatMax != 22 {
		t.Errorf("Unexpected max bounds: %+v", model.MaxBounds)
	}
	if model.MaxBoundsViscosity != config.MAP_MAX_BOUNDS_VISCOSITY {
		t.Errorf("Expected full drag resistance, got %f", model.MaxBoundsViscosity)
	}
	if model.FitPadding != config.MAP_FIT_PAD_RATIO {
		t.Errorf("Expected fit padding %f, got %f", config.MAP_FIT_PAD_RATIO, model.FitPadding)
	}

	// Cluster capability was injected.
	if model.Cluster == nil {
		t.Fatal("Expected cluster layer, got nil")
	}
	if model.Cluster.MaxClusterRadius != config.MAP_MAX_CLUSTER_RADIUS {
		t.Errorf("Expected cluster radius %d, got %d", config.MAP_MAX_CLUSTER_RADIUS, model.Cluster.MaxClusterRadius)
	}
	if !model.Cluster.SpiderfyOnMaxZoom || model.Cluster.ShowCoverageOnHover || !model.Cluster.ZoomToBoundsOnClick {
		t.Errorf("Unexpected cluster tuning: %+v", model.Cluster)
	}
}

func TestBuilder_Build_WithoutClusterCapability(t *testing.T) {
	builder := NewBuilder("properties-map", nil)

	model, err := builder.Build(builderListings())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if model.Cluster != nil {
		t.Errorf("Expected no cluster layer, got %+v", model.Cluster)
	}
	if len(model.Markers) != 3 {
		t.Errorf("Expected markers regardless of clustering, got %d", len(model.Markers))
	}
}

func TestBuilder_Build_SkipsBadCoordinates(t *testing.T) {
	listings := builderListings()
	listings[1].Latitude = "unknown"

	builder := NewBuilder("properties-map", nil)
	model, err := builder.Build(listings)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(model.Markers) != 2 {
		t.Fatalf("Expected 2 markers, got %d", len(model.Markers))
	}

	// The skipped listing must not skew the viewport.
	if model.FitBounds.LngMin != -40 || model.FitBounds.LngMax != -30 {
		t.Errorf("Unexpected fit bounds after skip: %+v", model.FitBounds)
	}
}

func TestBuilder_Build_NoPlaceableMarkers(t *testing.T) {
	listings := builderListings()
	for i := range listings {
		listings[i].Latitude = "unknown"
	}

	builder := NewBuilder("properties-map", nil)
	_, err := builder.Build(listings)

	if !errors.Is(err, ErrNoMarkers) {
		t.Fatalf("Expected ErrNoMarkers, got %v", err)
	}
}

func TestBuilder_Build_EmptyInput(t *testing.T) {
	builder := NewBuilder("properties-map", nil)

	_, err := builder.Build(nil)
	if !errors.Is(err, ErrNoMarkers) {
		t.Fatalf("Expected ErrNoMarkers, got %v", err)
	}
}

func TestBuilder_Build_MissingContainer(t *testing.T) {
	builder := NewBuilder("", nil)

	_, err := builder.Build(builderListings())
	if !errors.Is(err, ErrMissingContainer) {
		t.Fatalf("Expected ErrMissingContainer, got %v", err)
	}
}

func TestSessions(t *testing.T) {
	model := &MapModel{Markers: []Marker{{ListingID: "prop-1"}}}

	ready := NewReadySession(model)
	if ready.State != SESSION_READY || ready.Model == nil || ready.Err() != nil {
		t.Errorf("Unexpected ready session: %+v", ready)
	}
	if len(ready.Markers()) != 1 {
		t.Errorf("Expected 1 marker, got %d", len(ready.Markers()))
	}

	empty := NewEmptySession()
	if empty.State != SESSION_EMPTY || empty.Model != nil {
		t.Errorf("Unexpected empty session: %+v", empty)
	}
	if empty.Markers() != nil {
		t.Errorf("Expected nil markers, got %v", empty.Markers())
	}

	failed := NewErrorSession(errors.New("boom"))
	if failed.State != SESSION_ERROR || failed.Err() == nil {
		t.Errorf("Unexpected error session: %+v", failed)
	}

	// Session ids are distinct.
	if ready.ID == empty.ID || ready.ID == "" {
		t.Errorf("Expected distinct non-empty session ids: %q vs %q", ready.ID, empty.ID)
	}
}
