package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"sync"
)

// geoMember is one entry in a mock geo set.
type geoMember struct {
	lat float64
	lng float64
}

// MockRedisClient is an in-memory RedisClient for tests that do not need a
// real Redis. GeoSearch measures great-circle distance, so radius semantics
// match the real client.
type MockRedisClient struct {
	mu      sync.RWMutex
	data    map[string]string
	geoSets map[string]map[string]geoMember
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoSets: make(map[string]map[string]geoMember),
	}
}

func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

func (m *MockRedisClient) GeoUpsert(ctx context.Context, setKey, member string, lat, lng float64, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", member, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.geoSets[setKey]
	if !ok {
		set = make(map[string]geoMember)
		m.geoSets[setKey] = set
	}
	set[member] = geoMember{lat: lat, lng: lng}
	m.data[member] = string(body)
	return nil
}

func (m *MockRedisClient) GeoSearch(ctx context.Context, setKey string, lat, lng, radiusKm float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var payloads []string
	for member, pos := range m.geoSets[setKey] {
		if haversineKm(lat, lng, pos.lat, pos.lng) > radiusKm {
			continue
		}
		if body, ok := m.data[member]; ok {
			payloads = append(payloads, body)
		}
	}
	return payloads, nil
}

func (m *MockRedisClient) Ping() error {
	return nil
}

// Keys matches the glob pattern against value and geo set keys alike.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []string
	for key := range m.data {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	for key := range m.geoSets {
		if _, dup := m.data[key]; dup {
			continue
		}
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return matched, nil
}

// Del removes each key as a value, as a geo set, and as a member of every
// geo set.
func (m *MockRedisClient) Del(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.data, key)
		delete(m.geoSets, key)
		for _, set := range m.geoSets {
			delete(set, key)
		}
	}
	return nil
}

// haversineKm is the great-circle distance between two points in kilometers.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
