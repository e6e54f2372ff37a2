package cloudsync

import (
	"context"
	"sync"
	"time"
)

const DefaultDebounce = 2 * time.Second

// Scheduler debounces sync pushes: every Schedule call restarts the quiet
// period, so a burst of writes ends in a single push.
type Scheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	push    func(ctx context.Context)
	timer   *time.Timer
	stopped bool
	running sync.WaitGroup
}

func NewScheduler(delay time.Duration, push func(ctx context.Context)) *Scheduler {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Scheduler{
		delay: delay,
		push:  push,
	}
}

// Schedule arms the timer, replacing any pending one.
func (s *Scheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.delay, func() {
		s.fire(timer)
	})
	s.timer = timer
}

func (s *Scheduler) fire(timer *time.Timer) {
	s.mu.Lock()
	// a newer Schedule or a Cancel has replaced this timer
	if s.stopped || s.timer != timer {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	s.push(context.Background())
}

// Cancel drops the pending push, if any, and reports whether there was one.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked()
}

func (s *Scheduler) cancelLocked() bool {
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	return true
}

func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Flush runs a pending push right away and waits for it.
func (s *Scheduler) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.stopped || !s.cancelLocked() {
		s.mu.Unlock()
		return
	}
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	s.push(ctx)
}

// Stop cancels any pending push and waits for a running one to finish.
// The scheduler ignores Schedule calls afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.cancelLocked()
	s.mu.Unlock()

	s.running.Wait()
}
