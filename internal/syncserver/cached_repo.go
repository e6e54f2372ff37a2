package syncserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jasonschulke/mooove/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const snapshotCacheTTLSeconds = 10 * 60

// CachedRepo is a read-through cache in front of another snapshot repo.
// Writes go to the backing repo first and refresh the cached copy.
type CachedRepo struct {
	backing        snapshotRepo
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewCachedRepo(backing snapshotRepo, cacheSizeMB int, metricsManager *metrics.Manager) *CachedRepo {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &CachedRepo{
		backing:        backing,
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

func (r *CachedRepo) Get(ctx context.Context, deviceID string) ([]byte, error) {
	if cached, err := r.cache.Get([]byte(deviceID)); err == nil {
		if r.metricsManager != nil {
			r.metricsManager.CounterSnapshotCacheHits.Inc()
		}
		return cached, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("snapshot cache get [%s]: %s", deviceID, err)
	}

	payload, err := r.backing.Get(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	r.set(deviceID, payload)
	return payload, nil
}

func (r *CachedRepo) Put(ctx context.Context, deviceID string, payload []byte) error {
	if err := r.backing.Put(ctx, deviceID, payload); err != nil {
		r.cache.Del([]byte(deviceID))
		return fmt.Errorf("backing put: %w", err)
	}

	r.set(deviceID, payload)
	return nil
}

func (r *CachedRepo) set(deviceID string, payload []byte) {
	// entries larger than 1/1024 of the cache are rejected by freecache
	if err := r.cache.Set([]byte(deviceID), payload, snapshotCacheTTLSeconds); err != nil {
		log.Debugf("snapshot for [%s] not cached: %s", deviceID, err)
		r.cache.Del([]byte(deviceID))
	}
}
