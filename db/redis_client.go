package db

import "context"

// RedisClient defines the operations the listings geo index needs from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	// GeoUpsert writes a geo set member and its JSON payload atomically.
	GeoUpsert(ctx context.Context, setKey, member string, lat, lng float64, payload interface{}) error
	// GeoSearch returns the payloads of every member within radiusKm of the point.
	GeoSearch(ctx context.Context, setKey string, lat, lng, radiusKm float64) ([]string, error)
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(keys ...string) error
}
