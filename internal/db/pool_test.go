package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBPool_ParsesParams(t *testing.T) {
	// pgxpool connects lazily, so no server is needed here
	pool, err := NewDBPool(context.Background(), NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBName:     "mooove_sync",
		DBUser:     "mooove",
		DBPassword: "p@ss/word",
		DisableSSL: true,
	})
	require.NoError(t, err)
	defer pool.Close()

	cfg := pool.Config().ConnConfig
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, uint16(5432), cfg.Port)
	assert.Equal(t, "mooove_sync", cfg.Database)
	assert.Equal(t, "mooove", cfg.User)
	assert.Equal(t, "p@ss/word", cfg.Password)
}

func TestNewDBPool_DefaultUser(t *testing.T) {
	pool, err := NewDBPool(context.Background(), NewDBPoolParams{
		DBHost:         "localhost",
		DBPort:         "5432",
		DBName:         "mooove_sync",
		TracingEnabled: true,
	})
	require.NoError(t, err)
	defer pool.Close()

	assert.Equal(t, "postgres", pool.Config().ConnConfig.User)
	assert.NotNil(t, pool.Config().ConnConfig.Tracer)
}

func TestNewDBPool_InvalidPort(t *testing.T) {
	_, err := NewDBPool(context.Background(), NewDBPoolParams{
		DBHost: "localhost",
		DBPort: "not-a-port",
		DBName: "mooove_sync",
	})
	require.Error(t, err)
}
