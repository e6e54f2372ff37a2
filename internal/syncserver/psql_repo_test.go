//go:build integration_test || all_tests

package syncserver

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jasonschulke/mooove/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPsqlRepoSetup(t *testing.T) (*PsqlRepo, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "mooove_sync",
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		DisableSSL:     true,
		TracingEnabled: false,
	})
	require.NoError(t, err)

	repo := NewPsqlRepo(dbPool)
	require.NoError(t, repo.EnsureSchema(timeoutCtx))

	return repo, func() {
		dbPool.Close()
	}
}

func TestPsqlRepo_PutGet(t *testing.T) {
	repo, shutdown := testPsqlRepoSetup(t)
	defer shutdown()

	ctx := context.Background()
	deviceID := "0a6b8c1d-2e3f-4a5b-8c7d-9e0f1a2b3c4d"
	_, err := repo.db.Exec(ctx, `DELETE FROM device_snapshot WHERE device_id = $1`, deviceID)
	require.NoError(t, err)

	_, err = repo.Get(ctx, deviceID)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, repo.Put(ctx, deviceID, []byte(`{"data":{"a":1}}`)))
	got, err := repo.Get(ctx, deviceID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"a":1}}`, string(got))

	// upsert replaces the whole snapshot
	require.NoError(t, repo.Put(ctx, deviceID, []byte(`{"data":{"b":2}}`)))
	got, err = repo.Get(ctx, deviceID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"b":2}}`, string(got))

	// schema creation is idempotent
	require.NoError(t, repo.EnsureSchema(ctx))
}
