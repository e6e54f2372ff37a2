package syncserver

import (
	"context"
	"errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=syncserver_test

var ErrSnapshotNotFound = errors.New("snapshot not found")

// snapshotRepo stores one opaque JSON snapshot per device. Put replaces
// whatever was stored before.
type snapshotRepo interface {
	Get(ctx context.Context, deviceID string) ([]byte, error)
	Put(ctx context.Context, deviceID string, payload []byte) error
}
