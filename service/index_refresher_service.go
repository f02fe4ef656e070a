package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"propmap-server/widget"
)

// IndexRefresherService keeps the listings geo index warm by rebuilding the
// widget session on a fixed schedule, so nearby lookups do not drift too far
// from the inventory between page loads.
type IndexRefresherService struct {
	widgetService *MapWidgetService
}

func NewIndexRefresherService(widgetService *MapWidgetService) *IndexRefresherService {
	return &IndexRefresherService{
		widgetService: widgetService,
	}
}

// StartPeriodicJob refreshes the index every interval until ctx is cancelled.
func (ir *IndexRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	log.Infof("[IndexRefresherService] Starting periodic job (interval: %v)", interval)
	go ir.runPeriodicJob(ctx, interval)
}

func (ir *IndexRefresherService) runPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infof("[IndexRefresherService] Stopping periodic job")
			return
		case <-ticker.C:
			if err := ir.RefreshIndex(ctx); err != nil {
				log.Errorf("[IndexRefresherService] Refresh failed: %v", err)
			}
		}
	}
}

// RefreshIndex runs one build and reports how it went. Empty inventories are
// normal and only logged; fetch or build failures surface as errors.
func (ir *IndexRefresherService) RefreshIndex(ctx context.Context) error {
	session := ir.widgetService.BuildSession(ctx)
	switch session.State {
	case widget.SESSION_READY:
		log.Infof("[IndexRefresherService] Refreshed index with %d markers", len(session.Markers()))
		return nil
	case widget.SESSION_EMPTY:
		log.Warnf("[IndexRefresherService] Nothing to index")
		return nil
	default:
		return session.Err()
	}
}
