package webflow

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"propmap-server/config"
	"propmap-server/util"
)

func TestGetProperties_Mock(t *testing.T) {
	// Arrange: resolve resources relative to the repo root, not the package dir
	t.Setenv("PROJECT_ROOT", filepath.Join("..", ".."))

	client := NewPropertiesApiClientMock()

	expectedResponse, err := util.ReadPropertiesResponseFromJSON(config.GetResourcePath(config.PROPERTIES_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.GetProperties(context.Background())

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, expectedResponse, response, "Responses dont match")
	assert.NotEmpty(t, response.Properties, "Fixture should carry listings")
}
