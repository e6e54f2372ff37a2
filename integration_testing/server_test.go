//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jasonschulke/mooove/internal/cloudsync"
	"github.com/jasonschulke/mooove/internal/kv"
	"github.com/jasonschulke/mooove/internal/store"
	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncServer_PushThenRestore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite := newSuite(ctx)
	defer suite.cleanup()

	client := cloudsync.NewClient(syncEndpoint, nil)

	// server needs a moment to start listening
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://localhost:9000/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "test-version-info"
	}, 10*time.Second, 100*time.Millisecond)

	resp, err := http.Get(syncEndpoint)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	deviceKV := kv.NewMemoryStore()
	st := store.New(deviceKV, nil, "")
	syncer := cloudsync.NewSyncer(st, client)

	_, err = st.AddSession(ctx, workouts.Session{
		Name:      "Logged Workout",
		StartedAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, st.AddRestDay(ctx, "2024-06-04"))
	require.NoError(t, syncer.Push(ctx))

	deviceID, err := st.DeviceID(ctx)
	require.NoError(t, err)

	var stored int
	require.NoError(t, suite.DB.QueryRowContext(
		ctx,
		`SELECT count(*) FROM device_snapshot WHERE device_id = $1`,
		deviceID,
	).Scan(&stored))
	assert.Equal(t, 1, stored)

	// another device id sees nothing
	otherKV := kv.NewMemoryStore()
	other := store.New(otherKV, nil, "")
	assert.Zero(t, cloudsync.NewSyncer(other, client).PullIfEmpty(ctx))

	// a fresh install with the same device id gets everything back
	freshKV := kv.NewMemoryStore()
	require.NoError(t, freshKV.Set(ctx, store.KeyDeviceID, deviceID))
	fresh := store.New(freshKV, nil, "")
	restored := cloudsync.NewSyncer(fresh, client).PullIfEmpty(ctx)
	assert.Equal(t, 2, restored)
	assert.Len(t, fresh.LoadSessions(ctx), 1)
	assert.Equal(t, []string{"2024-06-04"}, fresh.LoadRestDays(ctx).Sorted())
}
