package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"propmap-server/api/webflow"
	"propmap-server/dao/redis"
	"propmap-server/models"
	"propmap-server/widget"
)

// ErrNoListings reports that the latest build produced nothing to display.
// Callers that need a hard failure on an empty inventory (the preview and
// check commands) use it; the HTTP surface treats empty as a normal state.
var ErrNoListings = errors.New("no listings eligible for display")

// ErrIndexDisabled reports that the listings geo index was not configured,
// so nearby lookups are unavailable.
var ErrIndexDisabled = errors.New("listings geo index is not configured")

// MapWidgetService turns the raw property inventory into map widget sessions.
// The listing DAO is optional: when nil, sessions still build normally and
// only nearby lookups are disabled.
type MapWidgetService struct {
	propertiesAPI webflow.PropertiesAPI
	listingDao    *redis.RedisListingDAO
	builder       *widget.Builder
}

func NewMapWidgetService(propertiesAPI webflow.PropertiesAPI, listingDao *redis.RedisListingDAO, builder *widget.Builder) *MapWidgetService {
	return &MapWidgetService{
		propertiesAPI: propertiesAPI,
		listingDao:    listingDao,
		builder:       builder,
	}
}

// BuildSession fetches the inventory and assembles a widget session from it.
// It always returns a session; failures are folded into the session state so
// callers render exactly one of ready, empty or error.
func (s *MapWidgetService) BuildSession(ctx context.Context) *widget.Session {
	// 1) Fetch the full inventory from the listings API
	response, err := s.propertiesAPI.GetProperties(ctx)
	if err != nil {
		log.Errorf("[MapWidgetService] Failed to fetch properties: %v", err)
		return widget.NewErrorSession(fmt.Errorf("fetch properties: %w", err))
	}

	// 2) Keep only listings eligible for display
	eligible := FilterEligible(response.Properties)
	if len(eligible) == 0 {
		log.Warnf("[MapWidgetService] No properties to display (fetched %d)", len(response.Properties))
		return widget.NewEmptySession()
	}

	// 3) Build the map model
	model, err := s.builder.Build(eligible)
	if err != nil {
		if errors.Is(err, widget.ErrNoMarkers) {
			log.Warnf("[MapWidgetService] No placeable markers among %d eligible listings", len(eligible))
			return widget.NewEmptySession()
		}
		log.Errorf("[MapWidgetService] Failed to build map model: %v", err)
		return widget.NewErrorSession(fmt.Errorf("build map model: %w", err))
	}

	// 4) Rebuild the geo index. Index trouble never breaks the widget, it
	// only leaves nearby lookups serving the previous snapshot.
	if s.listingDao != nil {
		if _, err := s.listingDao.RebuildIndex(ctx, eligible); err != nil {
			log.Errorf("[MapWidgetService] Failed to rebuild listings index: %v", err)
		}
	}

	return widget.NewReadySession(model)
}

// GetListingsNearby returns indexed listings within radiusKm of the given point.
func (s *MapWidgetService) GetListingsNearby(ctx context.Context, lat float64, lng float64, radiusKm float64) ([]models.Listing, error) {
	if s.listingDao == nil {
		return nil, ErrIndexDisabled
	}
	return s.listingDao.GetNearbyListings(ctx, lat, lng, radiusKm)
}

// FilterEligible keeps the listings that pass the display rules, preserving
// the inventory order.
func FilterEligible(listings []models.Listing) []models.Listing {
	return lo.Filter(listings, func(listing models.Listing, _ int) bool {
		return listing.DisplayEligible()
	})
}
