package models

// PropertiesResponse is the envelope returned by the listings API.
type PropertiesResponse struct {
	Properties []Listing `json:"properties"`
}
