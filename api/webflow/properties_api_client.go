package webflow

import (
	"context"
	"net/http"

	"propmap-server/api"
	"propmap-server/config"
	"propmap-server/models"
)

// PropertiesApiClient fetches the inventory over the shared HTTPClient.
type PropertiesApiClient struct {
	*api.HTTPClient
}

func NewPropertiesApiClient(httpClient *api.HTTPClient) *PropertiesApiClient {
	return &PropertiesApiClient{
		HTTPClient: httpClient,
	}
}

// GetProperties retrieves the full property inventory in a single call.
// There is no pagination or retry; a slow upstream is cut off by the
// client timeout and surfaces as an error.
func (c *PropertiesApiClient) GetProperties(ctx context.Context) (*models.PropertiesResponse, error) {
	var response models.PropertiesResponse
	if err := c.Request(ctx, http.MethodGet, config.LISTINGS_API_PROPERTIES_PATH, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
