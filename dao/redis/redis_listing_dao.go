package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"propmap-server/db"
	"propmap-server/models"
)

const LISTINGS_GEO_KEY_V1 = "listings_geo_v1"
const LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1 = "listings_geo_place_v1:%s"

// INDEX_REBUILT_AT_KEY records when the index was last rebuilt.
const INDEX_REBUILT_AT_KEY = "listings_index_meta_v1:rebuilt_at"

// RedisListingDAO maintains the geo index of displayable listings. The index
// is a pure projection of the latest widget build: every rebuild drops the
// previous members before inserting the current ones, so nothing outlives
// the data it came from.
type RedisListingDAO struct {
	client db.RedisClient
	mu     sync.Mutex // serializes rebuilds
}

// NewRedisListingDAO initializes a RedisListingDAO with the Redis client.
func NewRedisListingDAO(client db.RedisClient) *RedisListingDAO {
	return &RedisListingDAO{client: client}
}

// UpsertListing stores the listing as a geolocation with its JSON data.
func (dao *RedisListingDAO) UpsertListing(ctx context.Context, l models.Listing) error {
	lat, lng, err := l.Coordinates()
	if err != nil {
		return fmt.Errorf("[RedisListingDAO] listing %s has no usable coordinates: %w", l.ID, err)
	}
	memberKey := fmt.Sprintf(LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1, l.ID)
	return dao.client.GeoUpsert(ctx, LISTINGS_GEO_KEY_V1, memberKey, lat, lng, l)
}

// RebuildIndex replaces the whole index with the given listings and returns
// how many were indexed. Listings whose coordinates do not parse are skipped,
// mirroring the marker builder.
func (dao *RedisListingDAO) RebuildIndex(ctx context.Context, listings []models.Listing) (int, error) {
	dao.mu.Lock()
	defer dao.mu.Unlock()

	if err := dao.clearIndex(); err != nil {
		return 0, fmt.Errorf("[RedisListingDAO] failed to clear index: %w", err)
	}

	indexed := 0
	for _, l := range listings {
		if err := dao.UpsertListing(ctx, l); err != nil {
			log.Debugf("[RedisListingDAO] Skipping listing %s: %v", l.ID, err)
			continue
		}
		indexed++
	}

	if err := dao.client.Set(INDEX_REBUILT_AT_KEY, time.Now().Format(time.RFC3339)); err != nil {
		log.Warnf("[RedisListingDAO] Failed to record rebuild time: %v", err)
	}

	log.Infof("[RedisListingDAO] Rebuilt geo index with %d listings", indexed)
	return indexed, nil
}

// GetNearbyListings retrieves listings within a radius (in kilometers).
func (dao *RedisListingDAO) GetNearbyListings(ctx context.Context, lat, lng, radiusKm float64) ([]models.Listing, error) {
	listingsJSON, err := dao.client.GeoSearch(ctx, LISTINGS_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisListingDAO] failed to get listings: %v", err)
	}

	listings := make([]models.Listing, len(listingsJSON))
	for i, listingJSON := range listingsJSON {
		if err := json.Unmarshal([]byte(listingJSON), &listings[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal listing JSON: %v", err)
		}
	}
	return listings, nil
}

// ListIndexedListingIDs returns all listing IDs present in the geo index.
func (dao *RedisListingDAO) ListIndexedListingIDs() ([]string, error) {
	pattern := fmt.Sprintf(LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list listing geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// LastRebuildTime reports when the index was last rebuilt.
func (dao *RedisListingDAO) LastRebuildTime() (time.Time, error) {
	str, err := dao.client.Get(INDEX_REBUILT_AT_KEY)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get rebuild time: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse rebuild time %q: %w", str, err)
	}
	return ts, nil
}

// clearIndex drops every member key and the geo set itself. Callers hold mu.
func (dao *RedisListingDAO) clearIndex() error {
	pattern := fmt.Sprintf(LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return err
	}
	return dao.client.Del(append(keys, LISTINGS_GEO_KEY_V1)...)
}
