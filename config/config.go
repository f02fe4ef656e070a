package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Listings API config
const LISTINGS_API_ENDPOINT_BASE = "http://localhost:3000"
const LISTINGS_API_PROPERTIES_PATH = "/api/webflow/properties"
const LISTINGS_FETCH_TIMEOUT_SECONDS = 10

// HTTP server config. The write timeout must outlast the upstream fetch
// timeout, since /api/map holds its response open for the whole build.
const HTTP_LISTEN_ADDRESS = ":8080"
const HTTP_READ_TIMEOUT_SECONDS = 10
const HTTP_WRITE_TIMEOUT_SECONDS = 30
const HTTP_IDLE_TIMEOUT_SECONDS = 60
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Redis config
const REDIS_DB_ADDRESS = "localhost:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Index refresher config
const LISTINGS_INDEX_REFRESHER_SCHEDULE_MINUTES = 60

// Map widget config
const MAP_CONTAINER_ID = "properties-map"
const MAP_TILE_URL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
const MAP_TILE_ATTRIBUTION = "&copy; OpenStreetMap contributors"
const MAP_TILE_MAX_ZOOM = 19
const MAP_DEFAULT_ZOOM = 10
const MAP_BOUNDS_PAD_RATIO = 0.20
const MAP_FIT_PAD_RATIO = 0.10
const MAP_MAX_BOUNDS_VISCOSITY = 1.0
const MAP_MAX_CLUSTER_RADIUS = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PROPERTIES_RESPONSE_RESOURCE = "properties_response.json"

// Templates file paths
const TEMPLATES_PATH_PREFIX = "templates"
const WIDGET_PAGE_TEMPLATE = "widget.html"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func GetTemplatePath(templateFile string) string {
	return filepath.Join(BaseDir(), TEMPLATES_PATH_PREFIX, templateFile)
}

// GetEnvName reports the runtime environment. Anything other than "prod"
// wires the fixture-backed listings client.
func GetEnvName() string {
	return getEnv("PROPMAP_ENV", "prod")
}

// GetListingsAPIBase returns the upstream listings API base URL.
func GetListingsAPIBase() string {
	return getEnv("LISTINGS_API_BASE", LISTINGS_API_ENDPOINT_BASE)
}

// GetListenAddress returns the HTTP listen address.
func GetListenAddress() string {
	return getEnv("LISTEN_ADDR", HTTP_LISTEN_ADDRESS)
}

// GetRedisAddress returns the Redis address. Setting REDIS_ADDR to an empty
// string disables the geo index and the nearby-listings API.
func GetRedisAddress() string {
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		return v
	}
	return REDIS_DB_ADDRESS
}

// GetFetchTimeoutSeconds returns the upstream fetch timeout in seconds.
func GetFetchTimeoutSeconds() int {
	return getEnvInt("FETCH_TIMEOUT_SECONDS", LISTINGS_FETCH_TIMEOUT_SECONDS)
}

// GetMapContainerID returns the DOM id the widget page mounts the map into.
func GetMapContainerID() string {
	return getEnv("MAP_CONTAINER_ID", MAP_CONTAINER_ID)
}

// IsClusteringEnabled reports whether the marker cluster layer is wired in.
func IsClusteringEnabled() bool {
	return getEnvBool("CLUSTERING_ENABLED", true)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
