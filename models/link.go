// models/link.go
package models

import "fmt"

const LISTING_PATH_FORMAT = "/listings/%s"

// ListingLink points at a listing's detail page. Popup content is wrapped
// in it so clicking anywhere inside navigates to the listing.
type ListingLink struct {
	Href string `json:"href"`
}

// NewListingLink builds the detail-page link for a listing id.
func NewListingLink(listingID string) ListingLink {
	return ListingLink{Href: fmt.Sprintf(LISTING_PATH_FORMAT, listingID)}
}
