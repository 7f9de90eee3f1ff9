// Package lifecycle holds the page-level resources the site front end drives:
// the timed splash transition and the body scroll lock.
package lifecycle

import (
	"context"
	"sync"
	"time"
)

// DefaultSplashDuration is how long the loading overlay stays up.
const DefaultSplashDuration = 3 * time.Second

// SplashState is the phase of a Splash.
type SplashState int

const (
	SplashLoading SplashState = iota
	SplashReady
	SplashStopped
)

func (s SplashState) String() string {
	switch s {
	case SplashReady:
		return "ready"
	case SplashStopped:
		return "stopped"
	default:
		return "loading"
	}
}

// Splash moves from Loading to Ready once its duration has elapsed. It can be
// torn down early with Stop or by cancelling the context passed to Start, in
// which case onReady never runs.
type Splash struct {
	duration time.Duration
	onReady  func()

	mu       sync.Mutex
	state    SplashState
	started  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	exited   chan struct{}
}

// NewSplash returns a splash in the Loading state. A non-positive duration
// falls back to DefaultSplashDuration. onReady may be nil.
func NewSplash(duration time.Duration, onReady func()) *Splash {
	if duration <= 0 {
		duration = DefaultSplashDuration
	}
	return &Splash{
		duration: duration,
		onReady:  onReady,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Duration reports the configured delay.
func (s *Splash) Duration() time.Duration { return s.duration }

// Start launches the timer. Calls after the first one, or after Stop, are
// no-ops.
func (s *Splash) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.state != SplashLoading {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	timer := time.NewTimer(s.duration)
	go func() {
		defer close(s.exited)
		defer timer.Stop()

		select {
		case <-timer.C:
			s.finish(SplashReady)
		case <-ctx.Done():
			s.finish(SplashStopped)
		case <-s.stop:
			s.finish(SplashStopped)
		}
	}()
}

// Stop cancels a pending transition and waits for the timer goroutine to
// exit. It is safe to call more than once and must not be called from
// onReady.
func (s *Splash) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })

	// Checking started and settling the state under one lock keeps a
	// concurrent Start from launching a goroutine Stop would not wait for.
	s.mu.Lock()
	if !s.started {
		s.settle(SplashStopped)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	<-s.exited
}

// Done is closed once the splash is Ready or Stopped.
func (s *Splash) Done() <-chan struct{} { return s.done }

// State returns the current phase.
func (s *Splash) State() SplashState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Splash) finish(next SplashState) {
	s.mu.Lock()
	changed := s.settle(next)
	s.mu.Unlock()

	if changed && next == SplashReady && s.onReady != nil {
		s.onReady()
	}
}

// settle moves a Loading splash to next. s.mu must be held.
func (s *Splash) settle(next SplashState) bool {
	if s.state != SplashLoading {
		return false
	}
	s.state = next
	close(s.done)
	return true
}
