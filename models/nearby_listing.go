// models/nearby_listing.go
package models

// NearbyListing is a single result row of the nearby-listings API: the
// listing's core fields plus the presentation bits clients render directly.
type NearbyListing struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	PriceLabel string      `json:"price_label"`
	Link       ListingLink `json:"link"`
}
