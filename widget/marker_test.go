package widget

import (
	"strings"
	"testing"

	"propmap-server/models"
)

func markerListing() models.Listing {
	return models.Listing{
		ID:            "prop-1",
		Name:          "Cedar Creek Cabin",
		City:          "Asheville",
		State:         "NC",
		Latitude:      "35.5951",
		Longitude:     "-82.5515",
		PriceMin:      100,
		PriceMax:      250,
		FeaturedImage: "https://cdn.example.com/cabin.jpg",
		IsLive:        true,
		BookingActive: true,
	}
}

func TestBuildMarker(t *testing.T) {
	m, err := BuildMarker(markerListing())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if m.Coordinate.Lat != 35.5951 || m.Coordinate.Lng != -82.5515 {
		t.Errorf("Unexpected coordinate: %+v", m.Coordinate)
	}
	if m.Href != "/listings/prop-1" {
		t.Errorf("Expected href '/listings/prop-1', got %q", m.Href)
	}
	if !strings.Contains(m.Icon.HTML, HOUSE_GLYPH) {
		t.Errorf("Expected house glyph in icon HTML, got %q", m.Icon.HTML)
	}
}

func TestBuildMarker_PopupContents(t *testing.T) {
	m, err := BuildMarker(markerListing())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	popup := m.PopupHTML
	for _, want := range []string{
		`href="/listings/prop-1"`,
		`src="https://cdn.example.com/cabin.jpg"`,
		"Asheville, NC",
		"Cedar Creek Cabin",
		"$100-$250",
	} {
		if !strings.Contains(popup, want) {
			t.Errorf("Popup missing %q:\n%s", want, popup)
		}
	}
}

func TestBuildMarker_PopupWithoutImage(t *testing.T) {
	l := markerListing()
	l.FeaturedImage = ""

	m, err := BuildMarker(l)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(m.PopupHTML, "<img") {
		t.Errorf("Expected no image tag, got:\n%s", m.PopupHTML)
	}
}

func TestBuildMarker_PopupEscapesName(t *testing.T) {
	l := markerListing()
	l.Name = `The "Best" <Cabin>`

	m, err := BuildMarker(l)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(m.PopupHTML, "<Cabin>") {
		t.Errorf("Expected escaped name, got:\n%s", m.PopupHTML)
	}
}

func TestBuildMarker_InvalidCoordinates(t *testing.T) {
	l := markerListing()
	l.Longitude = "unknown"

	if _, err := BuildMarker(l); err == nil {
		t.Fatal("Expected an error, got nil")
	}
}

func TestBuildMarkers_SkipsUnparseable(t *testing.T) {
	bad := markerListing()
	bad.ID = "prop-bad"
	bad.Latitude = "not-a-number"

	good1 := markerListing()
	good2 := markerListing()
	good2.ID = "prop-2"

	markers := BuildMarkers([]models.Listing{good1, bad, good2})

	if len(markers) != 2 {
		t.Fatalf("Expected 2 markers, got %d", len(markers))
	}
	if markers[0].ListingID != "prop-1" || markers[1].ListingID != "prop-2" {
		t.Errorf("Expected order preserved, got %s, %s", markers[0].ListingID, markers[1].ListingID)
	}
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		city, state, want string
	}{
		{"Asheville", "NC", "Asheville, NC"},
		{"Asheville", "", "Asheville"},
		{"", "NC", "NC"},
		{"", "", ""},
	}

	for _, test := range tests {
		if got := formatLocation(test.city, test.state); got != test.want {
			t.Errorf("formatLocation(%q, %q) = %q, want %q", test.city, test.state, got, test.want)
		}
	}
}

func TestMarker_StateMachinePerMarker(t *testing.T) {
	a, _ := BuildMarker(markerListing())
	b, _ := BuildMarker(markerListing())

	a.StateMachine().PointerEnter()

	if a.StateMachine().State() != STATE_HOVERED {
		t.Errorf("Expected hovered, got %s", a.StateMachine().State())
	}
	if b.StateMachine().State() != STATE_IDLE {
		t.Errorf("Expected independent idle marker, got %s", b.StateMachine().State())
	}
}
