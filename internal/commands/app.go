package commands

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jasonschulke/mooove/internal/calendar"
	"github.com/jasonschulke/mooove/internal/cloudsync"
	"github.com/jasonschulke/mooove/internal/config"
	"github.com/jasonschulke/mooove/internal/kv"
	"github.com/jasonschulke/mooove/internal/stats"
	"github.com/jasonschulke/mooove/internal/store"
	"github.com/jasonschulke/mooove/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const flushTimeout = 10 * time.Second

// App wires the store and everything that reads from it for one CLI run.
type App struct {
	Store     *store.Store
	Analyzer  *stats.Analyzer
	Toggler   *calendar.Toggler
	Syncer    *cloudsync.Syncer
	Scheduler *cloudsync.Scheduler

	kv kv.Store
}

// NewApp opens the configured key-value backend, builds the store on top of
// it and, when sync is enabled, restores a remote snapshot onto an empty
// device. The starter library is seeded after the restore attempt so that a
// fresh install does not count as having local data.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	kvStore, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg, kvStore), nil
}

func newApp(ctx context.Context, cfg *config.Config, kvStore kv.Store) *App {
	app := &App{kv: kvStore}
	if cfg.SyncEnabled {
		app.Scheduler = cloudsync.NewScheduler(cfg.SyncDebounce(), func(ctx context.Context) {
			app.Syncer.PushNow(ctx)
		})
		app.Store = store.New(kvStore, app.Scheduler, cfg.FallbackAPIKey)
		app.Syncer = cloudsync.NewSyncer(app.Store, cloudsync.NewClient(cfg.SyncEndpoint, nil))
	} else {
		app.Store = store.New(kvStore, nil, cfg.FallbackAPIKey)
	}
	app.Analyzer = stats.NewAnalyzer(app.Store)
	app.Toggler = calendar.NewToggler(app.Store)

	if app.Syncer != nil {
		if restored := app.Syncer.PullIfEmpty(ctx); restored > 0 {
			log.Infof("restored %d documents from cloud sync", restored)
		}
	}

	if _, err := app.Store.SeedLibrary(ctx); err != nil {
		log.Warnf("seed workout library: %s", err)
	}

	return app
}

func openKV(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.KVBackend {
	case config.KVBackendMemory:
		return kv.NewMemoryStore(), nil
	case config.KVBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       0, // use default DB
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return kv.NewRedisStore(rdb, kv.DefaultRedisKeyPrefix), nil
	default:
		if err := pkg.EnsureDir(cfg.DataDir); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return kv.NewSQLiteStore(cfg.SQLitePath())
	}
}

// Close pushes any pending sync before releasing the backend.
func (a *App) Close(ctx context.Context) error {
	if a.Scheduler != nil {
		flushCtx, cancel := context.WithTimeout(ctx, flushTimeout)
		a.Scheduler.Flush(flushCtx)
		cancel()
		a.Scheduler.Stop()
	}

	var err error
	if a.kv != nil {
		err = multierr.Append(err, a.kv.Close())
	}
	return err
}
