package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// GeoRedisClient implements RedisClient over a go-redis connection. Geo set
// members are listing ids; each member's JSON payload lives under a key of
// its own so position queries and payload reads stay independent.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an initialized Redis client. Connectivity is the
// caller's concern: Ping separately and decide whether to degrade.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// GeoUpsert runs GEOADD and the payload SET in one MULTI/EXEC round trip, so
// a concurrent search can never observe a member position without its payload.
func (r *GeoRedisClient) GeoUpsert(ctx context.Context, setKey, member string, lat, lng float64, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", member, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, setKey, &redis.GeoLocation{
			Name:      member,
			Latitude:  lat,
			Longitude: lng,
		})
		pipe.Set(ctx, member, body, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("geo upsert %s: %w", member, err)
	}

	log.Debugf("[GeoRedisClient] Upserted member %s at (%f, %f)", member, lat, lng)
	return nil
}

// GeoSearch finds members with GEORADIUS and fetches all their payloads in a
// single MGET. Members whose payload key has vanished are skipped.
func (r *GeoRedisClient) GeoSearch(ctx context.Context, setKey string, lat, lng, radiusKm float64) ([]string, error) {
	locations, err := r.client.GeoRadius(ctx, setKey, lng, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("geo radius on %s: %w", setKey, err)
	}
	if len(locations) == 0 {
		return nil, nil
	}

	members := make([]string, len(locations))
	for i, loc := range locations {
		members[i] = loc.Name
	}

	values, err := r.client.MGet(ctx, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch payloads from %s: %w", setKey, err)
	}

	payloads := make([]string, 0, len(values))
	for i, v := range values {
		body, ok := v.(string)
		if !ok {
			log.Warnf("[GeoRedisClient] Member %s has no payload, skipping", members[i])
			continue
		}
		payloads = append(payloads, body)
	}

	return payloads, nil
}

func (r *GeoRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *GeoRedisClient) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}
