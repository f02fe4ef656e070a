package handlers

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"propmap-server/models"
	services "propmap-server/service"
	"propmap-server/widget"
)

// NearbyFinder looks up indexed listings around a point.
type NearbyFinder interface {
	GetListingsNearby(ctx context.Context, lat float64, lng float64, radiusKm float64) ([]models.Listing, error)
}

type ListingHandler struct {
	finder NearbyFinder
}

func NewListingHandler(finder NearbyFinder) *ListingHandler {
	return &ListingHandler{finder: finder}
}

func (h *ListingHandler) GetListingsNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	query, err := models.ParseNearbyQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// 2) Load geo-indexed listings
	listings, err := h.finder.GetListingsNearby(r.Context(), query.Lat, query.Lng, query.RadiusKm)
	if err != nil {
		if errors.Is(err, services.ErrIndexDisabled) {
			writeError(w, r, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.Errorf("[ListingHandler] Failed to load nearby listings: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// 3) Transform to the wire shape
	nearby := toNearbyListings(listings)

	// 4) Apply the optional result limit
	if query.Limit != nil && len(nearby) > *query.Limit {
		nearby = nearby[:*query.Limit]
	}

	// 5) Write JSON
	writeJSON(w, r, http.StatusOK, models.NearbyListingsResponse{
		Status:    "ok",
		Listings:  nearby,
		ListingsN: len(nearby),
	})
}

func toNearbyListings(listings []models.Listing) []models.NearbyListing {
	nearby := make([]models.NearbyListing, 0, len(listings))
	for _, listing := range listings {
		lat, lng, err := listing.Coordinates()
		if err != nil {
			log.Warnf("[ListingHandler] Skipping listing %s: %v", listing.ID, err)
			continue
		}
		nearby = append(nearby, models.NearbyListing{
			ID:         listing.ID,
			Name:       listing.Name,
			City:       listing.City,
			State:      listing.State,
			Lat:        lat,
			Lng:        lng,
			PriceLabel: widget.FormatPriceRange(listing.PriceMin, listing.PriceMax),
			Link:       models.NewListingLink(listing.ID),
		})
	}
	return nearby
}
