package util

import (
	"encoding/json"
	"fmt"
	"os"

	"propmap-server/models"
)

// ReadPropertiesResponseFromJSON loads a PropertiesResponse from JSON on disk.
func ReadPropertiesResponseFromJSON(filePath string) (*models.PropertiesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PropertiesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PropertiesResponse: %w", err)
	}
	return &resp, nil
}

// ReadListingFromJSON loads a single Listing from JSON on disk.
func ReadListingFromJSON(filePath string) (*models.Listing, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var l models.Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Listing: %w", err)
	}
	return &l, nil
}

// PrintPropertiesResponsePartially prints key fields of a PropertiesResponse.
func PrintPropertiesResponsePartially(resp *models.PropertiesResponse) {
	fmt.Printf("Properties returned: %d\n", len(resp.Properties))
	if len(resp.Properties) > 0 {
		l := resp.Properties[0]
		fmt.Printf("First listing: %s (%s, %s) at (%s, %s)\n",
			l.Name, l.City, l.State, l.Latitude, l.Longitude)
	}
}
