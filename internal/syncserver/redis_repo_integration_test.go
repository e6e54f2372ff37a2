//go:build integration_test || all_tests

package syncserver_test

import (
	"testing"

	"github.com/jasonschulke/mooove/internal/syncserver"
	testingpkg "github.com/jasonschulke/mooove/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepo_Integration(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	defer func() {
		assert.NoError(t, rdb.Close())
	}()

	deviceID := "1b2c3d4e-5f60-4718-9a0b-1c2d3e4f5a6b"
	require.NoError(t, rdb.Del(ctx, "mooove||snapshot||"+deviceID).Err())

	repo := syncserver.NewRedisRepo(rdb)
	_, err := repo.Get(ctx, deviceID)
	assert.ErrorIs(t, err, syncserver.ErrSnapshotNotFound)

	require.NoError(t, repo.Put(ctx, deviceID, []byte(`{"data":{}}`)))
	got, err := repo.Get(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{}}`, string(got))
}
