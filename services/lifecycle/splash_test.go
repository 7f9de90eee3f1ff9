package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSplashBecomesReady(t *testing.T) {
	var calls atomic.Int32
	s := NewSplash(10*time.Millisecond, func() { calls.Add(1) })
	assert.Equal(t, SplashLoading, s.State())

	s.Start(context.Background())
	s.Start(context.Background())

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("splash never became ready")
	}
	s.Stop()

	assert.Equal(t, SplashReady, s.State())
	assert.Equal(t, int32(1), calls.Load())
}

func TestSplashStopBeforeFire(t *testing.T) {
	var calls atomic.Int32
	s := NewSplash(time.Hour, func() { calls.Add(1) })
	s.Start(context.Background())
	s.Stop()
	s.Stop()

	assert.Equal(t, SplashStopped, s.State())
	assert.Zero(t, calls.Load())
	_, open := <-s.Done()
	assert.False(t, open)
}

func TestSplashStopWithoutStart(t *testing.T) {
	s := NewSplash(0, nil)
	assert.Equal(t, DefaultSplashDuration, s.Duration())

	s.Stop()
	assert.Equal(t, SplashStopped, s.State())

	s.Start(context.Background())
	assert.Equal(t, SplashStopped, s.State())
}

func TestSplashContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	s := NewSplash(time.Hour, func() { calls.Add(1) })
	s.Start(ctx)
	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not stop the splash")
	}
	s.Stop()
	require.Equal(t, SplashStopped, s.State())
	assert.Zero(t, calls.Load())
}

func TestSplashConcurrentStartStop(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := NewSplash(time.Hour, nil)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Start(context.Background())
		}()
		go func() {
			defer wg.Done()
			s.Stop()
		}()
		wg.Wait()

		// Stop settled the splash either way. Once it has returned, a later
		// Stop must return immediately and no timer goroutine may be left.
		s.Stop()
		require.Equal(t, SplashStopped, s.State())
		select {
		case <-s.Done():
		default:
			t.Fatal("done not closed after Stop")
		}
	}
}

func TestSplashStateString(t *testing.T) {
	assert.Equal(t, "loading", SplashLoading.String())
	assert.Equal(t, "ready", SplashReady.String())
	assert.Equal(t, "stopped", SplashStopped.String())
}
