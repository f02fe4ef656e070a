package widget

import "propmap-server/config"

// ClusterLayer configures the marker-clustering plugin on the client. Field
// names mirror the plugin's options; the page bootstrap maps them one to one.
type ClusterLayer struct {
	MaxClusterRadius    int  `json:"max_cluster_radius"`
	SpiderfyOnMaxZoom   bool `json:"spiderfy_on_max_zoom"`
	ShowCoverageOnHover bool `json:"show_coverage_on_hover"`
	ZoomToBoundsOnClick bool `json:"zoom_to_bounds_on_click"`
	ShowCount           bool `json:"show_count"`
}

// ClusterCapability is injected at composition time. A nil capability means
// the clustering plugin is not available and markers attach individually;
// nothing probes for it at build time.
type ClusterCapability interface {
	ClusterLayer() *ClusterLayer
}

// markerClusterPlugin is the capability backed by the bundled clustering
// plugin, with the widget's stock tuning.
type markerClusterPlugin struct{}

// NewMarkerClusterCapability returns the default clustering capability.
func NewMarkerClusterCapability() ClusterCapability {
	return &markerClusterPlugin{}
}

func (p *markerClusterPlugin) ClusterLayer() *ClusterLayer {
	return &ClusterLayer{
		MaxClusterRadius:    config.MAP_MAX_CLUSTER_RADIUS,
		SpiderfyOnMaxZoom:   true,
		ShowCoverageOnHover: false,
		ZoomToBoundsOnClick: true,
		ShowCount:           true,
	}
}
