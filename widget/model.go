package widget

import "propmap-server/models"

// TileLayer is the base map imagery source.
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
}

// MapModel is the complete map surface description the page bootstrap hands
// to the mapping library. It carries everything needed to mount the widget:
// camera placement, pan constraint, tile source, optional clustering and the
// marker set.
type MapModel struct {
	ContainerID string     `json:"container_id"`
	Center      Coordinate `json:"center"`
	Zoom        int        `json:"zoom"`

	TileLayer TileLayer `json:"tile_layer"`

	// Panning is constrained to MaxBounds with full drag resistance: a drag
	// against the edge stops dead instead of rubber-banding.
	MaxBounds          models.BoundingBox `json:"max_bounds"`
	MaxBoundsViscosity float64            `json:"max_bounds_viscosity"`

	// The view is fitted to FitBounds grown by FitPadding per side.
	FitBounds  models.BoundingBox `json:"fit_bounds"`
	FitPadding float64            `json:"fit_padding"`

	Cluster *ClusterLayer `json:"cluster,omitempty"`
	Markers []Marker      `json:"markers"`
}
