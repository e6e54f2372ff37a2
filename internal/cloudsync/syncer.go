package cloudsync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jasonschulke/mooove/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=cloudsync_test

type snapshotStore interface {
	Snapshot(ctx context.Context) (map[string]json.RawMessage, error)
	Restore(ctx context.Context, docs map[string]json.RawMessage) (int, error)
	IsEmpty(ctx context.Context) bool
	DeviceID(ctx context.Context) (string, error)
}

type remote interface {
	Push(ctx context.Context, deviceID string, snapshot map[string]json.RawMessage) error
	Pull(ctx context.Context, deviceID string) (map[string]json.RawMessage, error)
}

// Syncer mirrors the local documents to the remote. It is best effort: a
// failure never affects the local write it follows.
type Syncer struct {
	store  snapshotStore
	remote remote
}

func NewSyncer(store snapshotStore, remote remote) *Syncer {
	return &Syncer{
		store:  store,
		remote: remote,
	}
}

// Push uploads the current local snapshot.
func (s *Syncer) Push(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cloudsync.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deviceID, err := s.store.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("device id: %w", err)
	}
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := s.remote.Push(ctx, deviceID, snapshot); err != nil {
		return err
	}

	log.Debugf("cloudsync: pushed %d documents", len(snapshot))
	return nil
}

// PushNow is Push with the error logged and dropped. Scheduler runs it.
func (s *Syncer) PushNow(ctx context.Context) {
	if err := s.Push(ctx); err != nil {
		log.Debugf("cloudsync: push skipped: %s", err)
	}
}

// PullIfEmpty restores the remote snapshot onto a device with no sessions
// and no saved workouts. Devices with local data are never overwritten.
// Returns the number of restored documents; failures are logged and yield 0.
func (s *Syncer) PullIfEmpty(ctx context.Context) int {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cloudsync.pullIfEmpty")
	defer span.End()

	if !s.store.IsEmpty(ctx) {
		log.Traceln("cloudsync: local data present, not pulling")
		return 0
	}

	deviceID, err := s.store.DeviceID(ctx)
	if err != nil {
		log.Debugf("cloudsync: pull skipped, device id: %s", err)
		return 0
	}
	docs, err := s.remote.Pull(ctx, deviceID)
	if err != nil {
		log.Debugf("cloudsync: pull skipped: %s", err)
		return 0
	}
	if len(docs) == 0 {
		return 0
	}

	// a local write may have landed while the request was in flight
	if !s.store.IsEmpty(ctx) {
		log.Debugln("cloudsync: local data appeared during pull, discarding remote snapshot")
		return 0
	}

	restored, err := s.store.Restore(ctx, docs)
	if err != nil {
		log.Warnf("cloudsync: restore partially failed: %s", err)
	}
	log.Infof("cloudsync: restored %d documents from remote", restored)
	return restored
}
