package webflow

import (
	"context"

	log "github.com/sirupsen/logrus"

	"propmap-server/config"
	"propmap-server/models"
	"propmap-server/util"
)

// PropertiesApiClientMock serves the fixture inventory from disk, for local
// runs and tests that must not reach the real listings API.
type PropertiesApiClientMock struct{}

func NewPropertiesApiClientMock() *PropertiesApiClientMock {
	return &PropertiesApiClientMock{}
}

func (c *PropertiesApiClientMock) GetProperties(ctx context.Context) (*models.PropertiesResponse, error) {
	response, err := util.ReadPropertiesResponseFromJSON(config.GetResourcePath(config.PROPERTIES_RESPONSE_RESOURCE))
	if err != nil {
		log.Errorf("[PropertiesApiClientMock] Could not read fixture inventory: %v", err)
		return nil, err
	}
	return response, nil
}
