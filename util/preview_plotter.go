package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"propmap-server/models"
	"propmap-server/widget"
)

// PlotMapModel renders a geo scatter of the model's markers plus the corners
// of its pan boundary as a second series. It is a development aid for
// eyeballing viewport math without a browser map.
func PlotMapModel(model *widget.MapModel, w io.Writer) error {
	markers := make([]opts.GeoData, 0, len(model.Markers))
	for _, m := range model.Markers {
		markers = append(markers, opts.GeoData{
			Name:  m.Name,
			Value: []float64{m.Coordinate.Lng, m.Coordinate.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Property Map Preview",
			Width:     "900px",
			Height:    "640px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d listings with pan boundary corners", len(model.Markers)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries("Listings", types.ChartScatter, markers,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Pan boundary", types.ChartScatter, boundaryCorners(model.MaxBounds),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: "#c92a2a",
		}),
	)

	return geo.Render(w)
}

// boundaryCorners walks the pan boundary clockwise, closed back to the start.
func boundaryCorners(b models.BoundingBox) []opts.GeoData {
	return []opts.GeoData{
		{Name: "SW", Value: []float64{b.LngMin, b.LatMin}},
		{Name: "NW", Value: []float64{b.LngMin, b.LatMax}},
		{Name: "NE", Value: []float64{b.LngMax, b.LatMax}},
		{Name: "SE", Value: []float64{b.LngMax, b.LatMin}},
		{Name: "SW", Value: []float64{b.LngMin, b.LatMin}},
	}
}

// PlotMapModelToFile renders the preview into an HTML file on disk.
func PlotMapModelToFile(model *widget.MapModel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file %q: %w", path, err)
	}
	defer f.Close()

	return PlotMapModel(model, f)
}
