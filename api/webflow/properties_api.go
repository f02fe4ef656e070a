package webflow

import (
	"context"

	"propmap-server/models"
)

// PropertiesAPI defines the interface for fetching the property inventory
// from the Webflow-backed listings API.
type PropertiesAPI interface {
	GetProperties(ctx context.Context) (*models.PropertiesResponse, error)
}
