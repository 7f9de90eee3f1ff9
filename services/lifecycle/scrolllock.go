package lifecycle

import "sync"

// ScrollLock tracks whether page scrolling is suspended. The lock is held for
// as long as at least one Release handle is outstanding, so nested panels
// (mobile menu over a dialog) compose.
type ScrollLock struct {
	mu       sync.Mutex
	holders  int
	onChange func(locked bool)
}

// NewScrollLock returns an unlocked ScrollLock. onChange, when set, is called
// on every locked/unlocked transition while the lock's mutex is held, so it
// must not call back into the lock.
func NewScrollLock(onChange func(locked bool)) *ScrollLock {
	return &ScrollLock{onChange: onChange}
}

// Release is the handle returned by Acquire.
type Release struct {
	once sync.Once
	lock *ScrollLock
}

// Acquire takes the lock. Callers should defer the returned handle's
// Release.
func (l *ScrollLock) Acquire() *Release {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.holders++
	if l.holders == 1 && l.onChange != nil {
		l.onChange(true)
	}
	return &Release{lock: l}
}

// Locked reports whether any handle is outstanding.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}

// Holders reports the number of outstanding handles.
func (l *ScrollLock) Holders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders
}

// Release gives the handle back. Only the first call has an effect.
func (r *Release) Release() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		l := r.lock
		l.mu.Lock()
		defer l.mu.Unlock()

		l.holders--
		if l.holders == 0 && l.onChange != nil {
			l.onChange(false)
		}
	})
}
