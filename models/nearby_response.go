// models/nearby_response.go
package models

// NearbyListingsResponse is the nearby-listings API response envelope.
type NearbyListingsResponse struct {
	Status    string          `json:"status"`
	Listings  []NearbyListing `json:"listings"`
	ListingsN int             `json:"listings_n"`
}
