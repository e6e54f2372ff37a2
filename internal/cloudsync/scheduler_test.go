package cloudsync_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jasonschulke/mooove/internal/cloudsync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScheduler_CoalescesBursts(t *testing.T) {
	var pushes atomic.Int32
	pushed := make(chan struct{}, 10)
	scheduler := cloudsync.NewScheduler(50*time.Millisecond, func(ctx context.Context) {
		pushes.Add(1)
		pushed <- struct{}{}
	})
	defer scheduler.Stop()

	for i := 0; i < 5; i++ {
		scheduler.Schedule()
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, scheduler.Pending())

	select {
	case <-pushed:
	case <-time.After(2 * time.Second):
		t.Fatal("push did not run")
	}

	// nothing else may fire after the quiet period
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), pushes.Load())
	assert.False(t, scheduler.Pending())
}

func TestScheduler_Cancel(t *testing.T) {
	var pushes atomic.Int32
	scheduler := cloudsync.NewScheduler(30*time.Millisecond, func(ctx context.Context) {
		pushes.Add(1)
	})
	defer scheduler.Stop()

	scheduler.Schedule()
	assert.True(t, scheduler.Cancel())
	assert.False(t, scheduler.Cancel())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, pushes.Load())
}

func TestScheduler_Flush(t *testing.T) {
	var pushes atomic.Int32
	scheduler := cloudsync.NewScheduler(time.Hour, func(ctx context.Context) {
		pushes.Add(1)
	})
	defer scheduler.Stop()

	scheduler.Flush(context.Background())
	assert.Zero(t, pushes.Load(), "nothing pending, nothing flushed")

	scheduler.Schedule()
	scheduler.Schedule()
	scheduler.Flush(context.Background())
	assert.Equal(t, int32(1), pushes.Load())
	assert.False(t, scheduler.Pending())
}

func TestScheduler_StopIgnoresLaterSchedules(t *testing.T) {
	var pushes atomic.Int32
	scheduler := cloudsync.NewScheduler(10*time.Millisecond, func(ctx context.Context) {
		pushes.Add(1)
	})

	scheduler.Schedule()
	scheduler.Stop()
	scheduler.Schedule()
	require.False(t, scheduler.Pending())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, pushes.Load())
}

func TestScheduler_DefaultDelay(t *testing.T) {
	scheduler := cloudsync.NewScheduler(0, func(ctx context.Context) {})
	scheduler.Schedule()
	assert.True(t, scheduler.Pending())
	scheduler.Stop()
}
