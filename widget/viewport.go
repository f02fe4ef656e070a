package widget

import (
	"errors"

	"propmap-server/config"
	"propmap-server/models"
)

// ErrNoMarkers is returned when a viewport or map model is requested for an
// empty marker set.
var ErrNoMarkers = errors.New("no markers to place on the map")

// Coordinate is a parsed latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Viewport holds the initial camera placement derived from the marker set:
// the mean center, the tight bounds the view is fitted to, and the padded
// bounds panning is constrained to.
type Viewport struct {
	Center    Coordinate         `json:"center"`
	Bounds    models.BoundingBox `json:"bounds"`
	MaxBounds models.BoundingBox `json:"max_bounds"`
}

// ComputeViewport derives the viewport from parsed marker coordinates.
// The center is the arithmetic mean of all points, not the bounds midpoint,
// so dense areas pull the initial view toward themselves.
func ComputeViewport(coords []Coordinate) (*Viewport, error) {
	if len(coords) == 0 {
		return nil, ErrNoMarkers
	}

	var latSum, lngSum float64
	bounds := models.BoundingBox{
		LatMin: coords[0].Lat, LatMax: coords[0].Lat,
		LngMin: coords[0].Lng, LngMax: coords[0].Lng,
	}

	for _, c := range coords {
		latSum += c.Lat
		lngSum += c.Lng

		if c.Lat < bounds.LatMin {
			bounds.LatMin = c.Lat
		}
		if c.Lat > bounds.LatMax {
			bounds.LatMax = c.Lat
		}
		if c.Lng < bounds.LngMin {
			bounds.LngMin = c.Lng
		}
		if c.Lng > bounds.LngMax {
			bounds.LngMax = c.Lng
		}
	}

	center := Coordinate{
		Lat: latSum / float64(len(coords)),
		Lng: lngSum / float64(len(coords)),
	}
	bounds.Lat = center.Lat
	bounds.Lng = center.Lng
	bounds.MapZoom = config.MAP_DEFAULT_ZOOM

	return &Viewport{
		Center:    center,
		Bounds:    bounds,
		MaxBounds: bounds.Pad(config.MAP_BOUNDS_PAD_RATIO),
	}, nil
}
