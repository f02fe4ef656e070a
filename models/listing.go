package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PLACEHOLDER_PRICE marks listings whose price was never set: the CMS seeds
// both bounds with 3000 until an owner fills in real rates, so a bound equal
// to it means "unpriced", not "costs $3000".
const PLACEHOLDER_PRICE = 3000

// Listing represents a single property record from the listings API.
// Latitude and Longitude stay raw strings until marker build time because
// the CMS exports them inconsistently (sometimes numbers, sometimes strings).
type Listing struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	City  string `json:"city"`
	State string `json:"state"`

	Latitude  string `json:"latitude"`  // Read as string.
	Longitude string `json:"longitude"` // Read as string.

	PriceMin float64 `json:"priceMin"`
	PriceMax float64 `json:"priceMax"`

	FeaturedImage string `json:"featuredImage,omitempty"`

	IsLive        bool `json:"isLive"`
	BookingActive bool `json:"bookingActive"`
}

// UnmarshalJSON custom unmarshaler to normalize mixed-type fields.
func (l *Listing) UnmarshalJSON(data []byte) error {
	// Create an alias to avoid infinite recursion.
	type Alias Listing
	aux := &struct {
		Latitude  interface{} `json:"latitude"`
		Longitude interface{} `json:"longitude"`
		PriceMin  interface{} `json:"priceMin"`
		PriceMax  interface{} `json:"priceMax"`
		*Alias
	}{
		Alias: (*Alias)(l),
	}

	// Unmarshal into the auxiliary structure.
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	l.Latitude = coordinateToString(aux.Latitude)
	l.Longitude = coordinateToString(aux.Longitude)
	l.PriceMin = priceToFloat(aux.PriceMin)
	l.PriceMax = priceToFloat(aux.PriceMax)

	return nil
}

func coordinateToString(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return "" // Default value in case of error.
	}
}

func priceToFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// DisplayEligible reports whether the listing qualifies for the map:
// live, bookable, carrying at least one real price bound, and geolocated.
func (l *Listing) DisplayEligible() bool {
	if !l.IsLive || !l.BookingActive {
		return false
	}
	if l.PriceMin <= 0 && l.PriceMax <= 0 {
		return false
	}
	if l.PriceMin == PLACEHOLDER_PRICE || l.PriceMax == PLACEHOLDER_PRICE {
		return false
	}
	if l.Latitude == "" || l.Longitude == "" {
		return false
	}
	return true
}

// Coordinates parses the raw latitude/longitude strings.
func (l *Listing) Coordinates() (lat, lng float64, err error) {
	lat, err = strconv.ParseFloat(l.Latitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", l.Latitude, err)
	}
	lng, err = strconv.ParseFloat(l.Longitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", l.Longitude, err)
	}
	return lat, lng, nil
}

func (l *Listing) ToString() string {
	return fmt.Sprintf("Listing(id=%s, name=%s, lat=%s, lng=%s)",
		l.ID, l.Name, l.Latitude, l.Longitude)
}
