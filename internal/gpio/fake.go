package gpio

import (
	"errors"
	"sync"
)

// FakeInput is a test double driven by scripted level changes. Each
// Change call queues one notification together with the level that the
// matching Level call reports — mirroring the real source, where the
// level is read after acknowledging the notification. Extra Level
// reads between notifications repeat the last delivered level, like
// re-reading a quiet pin.
type FakeInput struct {
	changes chan struct{}

	mu       sync.Mutex
	pending  []bool
	last     bool
	haveLast bool

	// Closed tracks whether Close was called.
	Closed bool

	// LevelError, if set, is returned by Level.
	LevelError error
}

// NewFakeInput creates a FakeInput. The notification channel is
// unbuffered so test steps serialize against the loop under test.
func NewFakeInput() *FakeInput {
	return &FakeInput{changes: make(chan struct{})}
}

// Change queues a level-change notification. It blocks until the loop
// under test receives the notification.
func (f *FakeInput) Change(pressed bool) {
	f.mu.Lock()
	f.pending = append(f.pending, pressed)
	f.mu.Unlock()
	f.changes <- struct{}{}
}

// Changes returns the notification channel.
func (f *FakeInput) Changes() <-chan struct{} {
	return f.changes
}

// Level pops the level queued with the oldest unconsumed notification.
// Once the queue is empty the last delivered level repeats.
func (f *FakeInput) Level() (bool, error) {
	if f.LevelError != nil {
		return false, f.LevelError
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) > 0 {
		f.last = f.pending[0]
		f.haveLast = true
		f.pending = f.pending[1:]
		return f.last, nil
	}
	if !f.haveLast {
		return false, errors.New("no levels scripted")
	}
	return f.last, nil
}

// Close marks the input as closed and stops notifications.
func (f *FakeInput) Close() error {
	f.Closed = true
	close(f.changes)
	return nil
}
