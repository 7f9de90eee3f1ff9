package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollLockReleaseIsIdempotent(t *testing.T) {
	var transitions []bool
	l := NewScrollLock(func(locked bool) { transitions = append(transitions, locked) })

	r := l.Acquire()
	assert.True(t, l.Locked())

	r.Release()
	r.Release()
	assert.False(t, l.Locked())
	assert.Zero(t, l.Holders())
	assert.Equal(t, []bool{true, false}, transitions)
}

func TestScrollLockNested(t *testing.T) {
	var transitions []bool
	l := NewScrollLock(func(locked bool) { transitions = append(transitions, locked) })

	menu := l.Acquire()
	dialog := l.Acquire()
	assert.Equal(t, 2, l.Holders())

	menu.Release()
	assert.True(t, l.Locked(), "dialog still holds the lock")

	dialog.Release()
	assert.False(t, l.Locked())
	assert.Equal(t, []bool{true, false}, transitions)
}

func TestScrollLockDeferredRelease(t *testing.T) {
	l := NewScrollLock(nil)
	func() {
		defer l.Acquire().Release()
		assert.True(t, l.Locked())
	}()
	assert.False(t, l.Locked())

	var nilHandle *Release
	assert.NotPanics(t, nilHandle.Release)
}

func TestScrollLockConcurrent(t *testing.T) {
	l := NewScrollLock(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := l.Acquire()
			r.Release()
			r.Release()
		}()
	}
	wg.Wait()
	assert.Zero(t, l.Holders())
}
