package widget

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"propmap-server/models"
)

// HOUSE_GLYPH is the house character rendered inside every marker pin.
const HOUSE_GLYPH = "⌂"

const MARKER_CLASS = "property-marker"
const MARKER_ACTIVE_CLASS = "property-marker--active"

// popupTemplate renders the popup body. Everything is wrapped in the listing
// detail link so a click anywhere inside navigates.
var popupTemplate = template.Must(template.New("popup").Parse(`<a href="{{.Href}}" class="marker-popup">
{{- if .Image}}<img class="marker-popup-image" src="{{.Image}}" alt="{{.Name}}"/>{{end -}}
{{- if .Location}}<p class="marker-popup-location">{{.Location}}</p>{{end -}}
<h3 class="marker-popup-name">{{.Name}}</h3>
<p class="marker-popup-price">{{.Price}}</p></a>`))

type popupData struct {
	Href     string
	Image    string
	Location string
	Name     string
	Price    string
}

// MarkerIcon describes the pin rendered for a marker. The bootstrap swaps
// ClassName for ActiveClassName while the marker is highlighted.
type MarkerIcon struct {
	HTML            string `json:"html"`
	ClassName       string `json:"class_name"`
	ActiveClassName string `json:"active_class_name"`
}

// Marker is one placed listing: parsed coordinate, pin, popup and link.
type Marker struct {
	ListingID  string     `json:"listing_id"`
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
	Href       string     `json:"href"`
	PopupHTML  string     `json:"popup_html"`
	Icon       MarkerIcon `json:"icon"`

	state MarkerStateMachine
}

// StateMachine exposes the marker's interaction state machine.
func (m *Marker) StateMachine() *MarkerStateMachine {
	return &m.state
}

// BuildMarker assembles the marker for one listing. It fails only when the
// coordinates do not parse as numbers.
func BuildMarker(l models.Listing) (*Marker, error) {
	lat, lng, err := l.Coordinates()
	if err != nil {
		return nil, err
	}

	link := models.NewListingLink(l.ID)
	popup, err := renderPopup(l, link)
	if err != nil {
		return nil, err
	}

	return &Marker{
		ListingID:  l.ID,
		Name:       l.Name,
		Coordinate: Coordinate{Lat: lat, Lng: lng},
		Href:       link.Href,
		PopupHTML:  popup,
		Icon: MarkerIcon{
			HTML:            `<span class="marker-glyph">` + HOUSE_GLYPH + `</span>`,
			ClassName:       MARKER_CLASS,
			ActiveClassName: MARKER_ACTIVE_CLASS,
		},
	}, nil
}

// BuildMarkers assembles markers for all listings. A listing with
// unparseable coordinates is skipped without failing the batch.
func BuildMarkers(listings []models.Listing) []Marker {
	markers := make([]Marker, 0, len(listings))
	for _, l := range listings {
		m, err := BuildMarker(l)
		if err != nil {
			log.Debugf("[MarkerBuilder] Skipping listing %s: %v", l.ID, err)
			continue
		}
		markers = append(markers, *m)
	}
	return markers
}

func renderPopup(l models.Listing, link models.ListingLink) (string, error) {
	data := popupData{
		Href:     link.Href,
		Image:    l.FeaturedImage,
		Location: formatLocation(l.City, l.State),
		Name:     l.Name,
		Price:    FormatPriceRange(l.PriceMin, l.PriceMax),
	}

	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatLocation(city, state string) string {
	return strings.Join(lo.Compact([]string{city, state}), ", ")
}
