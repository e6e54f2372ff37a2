package syncserver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jasonschulke/mooove/internal/syncserver"
	"github.com/jasonschulke/mooove/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedRepo_ReadThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backing := NewMocksnapshotRepo(ctrl)
	metricsManager := metrics.NewTestManager()
	repo := syncserver.NewCachedRepo(backing, 1, metricsManager)

	payload := []byte(`{"data":{}}`)
	backing.EXPECT().Get(gomock.Any(), testDeviceID).Return(payload, nil).Times(1)

	for range 3 {
		got, err := repo.Get(ctx, testDeviceID)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterSnapshotCacheHits))
}

func TestCachedRepo_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backing := NewMocksnapshotRepo(ctrl)
	repo := syncserver.NewCachedRepo(backing, 1, nil)

	backing.EXPECT().Get(gomock.Any(), testDeviceID).Return(nil, syncserver.ErrSnapshotNotFound).Times(2)

	for range 2 {
		_, err := repo.Get(ctx, testDeviceID)
		assert.ErrorIs(t, err, syncserver.ErrSnapshotNotFound)
	}
}

func TestCachedRepo_PutRefreshesCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backing := NewMocksnapshotRepo(ctrl)
	repo := syncserver.NewCachedRepo(backing, 1, nil)

	v1 := []byte(`{"data":{"a":1}}`)
	v2 := []byte(`{"data":{"a":2}}`)

	backing.EXPECT().Put(gomock.Any(), testDeviceID, v1).Return(nil)
	require.NoError(t, repo.Put(ctx, testDeviceID, v1))

	got, err := repo.Get(ctx, testDeviceID)
	require.NoError(t, err)
	assert.Equal(t, v1, got)

	// a failed write drops the cached copy so the next read goes to the backing repo
	backing.EXPECT().Put(gomock.Any(), testDeviceID, v2).Return(errors.New("db down"))
	require.Error(t, repo.Put(ctx, testDeviceID, v2))

	backing.EXPECT().Get(gomock.Any(), testDeviceID).Return(v1, nil)
	got, err = repo.Get(ctx, testDeviceID)
	require.NoError(t, err)
	assert.Equal(t, v1, got)
}
