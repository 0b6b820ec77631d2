package main

import "time"

// windowTimer is the single-shot timer that closes a click session.
// Re-arming restarts the window from zero. Abstracted so the loop
// tests can fire expiries deterministically.
type windowTimer interface {
	C() <-chan time.Time
	Arm(d time.Duration)
}

type realTimer struct {
	t *time.Timer
}

func newWindowTimer() *realTimer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return &realTimer{t: t}
}

func (r *realTimer) C() <-chan time.Time { return r.t.C }

// Arm restarts the timer, draining a stale expiry that may have fired
// between the last read of the channel and now.
func (r *realTimer) Arm(d time.Duration) {
	if !r.t.Stop() {
		select {
		case <-r.t.C:
		default:
		}
	}
	r.t.Reset(d)
}
