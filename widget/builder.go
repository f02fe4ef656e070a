package widget

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"propmap-server/config"
	"propmap-server/models"
)

// ErrMissingContainer is returned when no container id is configured for the
// widget to mount into.
var ErrMissingContainer = errors.New("map container id is not configured")

// Builder assembles map models. The cluster capability is fixed at
// composition time; pass nil to attach markers individually.
type Builder struct {
	containerID string
	tileLayer   TileLayer
	cluster     ClusterCapability
}

// NewBuilder creates a Builder for the given container with the configured
// tile source.
func NewBuilder(containerID string, cluster ClusterCapability) *Builder {
	return &Builder{
		containerID: containerID,
		tileLayer: TileLayer{
			URL:         config.MAP_TILE_URL,
			Attribution: config.MAP_TILE_ATTRIBUTION,
			MaxZoom:     config.MAP_TILE_MAX_ZOOM,
		},
		cluster: cluster,
	}
}

// Build assembles the full map model for the given listings: markers first,
// then the viewport derived from the markers that actually parsed. Returns
// ErrNoMarkers when nothing is placeable so callers can take the empty path.
func (b *Builder) Build(listings []models.Listing) (*MapModel, error) {
	if b.containerID == "" {
		return nil, ErrMissingContainer
	}

	markers := BuildMarkers(listings)
	if len(markers) == 0 {
		return nil, ErrNoMarkers
	}

	coords := make([]Coordinate, len(markers))
	for i, m := range markers {
		coords[i] = m.Coordinate
	}

	viewport, err := ComputeViewport(coords)
	if err != nil {
		return nil, err
	}

	model := &MapModel{
		ContainerID:        b.containerID,
		Center:             viewport.Center,
		Zoom:               config.MAP_DEFAULT_ZOOM,
		TileLayer:          b.tileLayer,
		MaxBounds:          viewport.MaxBounds,
		MaxBoundsViscosity: config.MAP_MAX_BOUNDS_VISCOSITY,
		FitBounds:          viewport.Bounds,
		FitPadding:         config.MAP_FIT_PAD_RATIO,
		Markers:            markers,
	}

	if b.cluster != nil {
		model.Cluster = b.cluster.ClusterLayer()
	} else {
		log.Debugf("[WidgetBuilder] No cluster capability; markers attach individually")
	}

	return model, nil
}
