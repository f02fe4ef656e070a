package util

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadPropertiesResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"properties": [
			{
				"id": "prop-1",
				"name": "Cedar Creek Cabin",
				"city": "Asheville",
				"state": "NC",
				"latitude": "35.5951",
				"longitude": "-82.5515",
				"priceMin": 100,
				"priceMax": 250,
				"isLive": true,
				"bookingActive": true
			}
		]
	}`
	tempFile := createTempFile(t, content)

	// Act
	response, err := ReadPropertiesResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(response.Properties) != 1 {
		t.Fatalf("Expected 1 property, got %d", len(response.Properties))
	}
	if response.Properties[0].Name != "Cedar Creek Cabin" {
		t.Errorf("Expected Name 'Cedar Creek Cabin', got %s", response.Properties[0].Name)
	}
	if !response.Properties[0].DisplayEligible() {
		t.Error("Expected fixture listing to be display eligible")
	}
}

func TestReadPropertiesResponseFromJSON_MissingFile(t *testing.T) {
	// Act
	response, err := ReadPropertiesResponseFromJSON("does-not-exist.json")

	// Assert
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if response != nil {
		t.Errorf("Expected nil response, got %+v", response)
	}
}

func TestReadPropertiesResponseFromJSON_MalformedJSON(t *testing.T) {
	tempFile := createTempFile(t, `{"properties": [`)

	// Act
	_, err := ReadPropertiesResponseFromJSON(tempFile)

	// Assert
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
}

func TestReadListingFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"id": "prop-2",
		"name": "Lakefront Lodge",
		"latitude": 44.9778,
		"longitude": -93.2650
	}`
	tempFile := createTempFile(t, content)

	// Act
	listing, err := ReadListingFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if listing.ID != "prop-2" {
		t.Errorf("Expected ID 'prop-2', got %s", listing.ID)
	}
	if listing.Latitude != "44.9778" {
		t.Errorf("Expected Latitude '44.9778', got %s", listing.Latitude)
	}
}
