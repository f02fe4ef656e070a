package models

// BoundingBox is a geographic rectangle with its reference center point.
// Lat/Lng hold the center, the min/max pairs the corners.
type BoundingBox struct {
	Lat     float64 `json:"lat"`
	LatMax  float64 `json:"lat_max"`
	LatMin  float64 `json:"lat_min"`
	Lng     float64 `json:"lng"`
	LngMax  float64 `json:"lng_max"`
	LngMin  float64 `json:"lng_min"`
	MapZoom int     `json:"map_zoom"`
}

// Pad grows the box on every side by ratio of the corresponding axis span.
// The center and zoom are kept. A degenerate box (zero span) stays degenerate.
func (b BoundingBox) Pad(ratio float64) BoundingBox {
	latPad := (b.LatMax - b.LatMin) * ratio
	lngPad := (b.LngMax - b.LngMin) * ratio

	padded := b
	padded.LatMin = b.LatMin - latPad
	padded.LatMax = b.LatMax + latPad
	padded.LngMin = b.LngMin - lngPad
	padded.LngMax = b.LngMax + lngPad
	return padded
}

// Contains reports whether the point lies inside the box (borders included).
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lng >= b.LngMin && lng <= b.LngMax
}
