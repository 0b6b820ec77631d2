// Package status provides a thread-safe status tracker for the daemon.
// It is read by the HTTP status handlers while the wait loop writes it.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/button-daemon/internal/gesture"
)

// Counts tracks the number of each gesture emitted since startup.
type Counts struct {
	Down  int
	Up    int
	Click int
	Hold  int
}

// Config contains daemon configuration for display.
type Config struct {
	Pin             int
	ConfigPath      string
	ClickWindowMs   int64
	HoldThresholdMs int64
	ClickCountLimit uint
	FullTime        bool
	OffsetTime      bool
	Broker          string // empty = MQTT disabled
	HTTPAddr        string
}

// LastGesture describes the most recent gesture for display.
type LastGesture struct {
	Kind   gesture.Kind
	Count  int
	HeldMs int64
	At     time.Time
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Last          *LastGesture
	Counts        Counts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Record notes an emitted gesture. Called from the wait loop.
func (t *Tracker) Record(ev gesture.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case gesture.Down:
		t.snap.Counts.Down++
	case gesture.Up:
		t.snap.Counts.Up++
	case gesture.Click:
		t.snap.Counts.Click++
	case gesture.Hold:
		t.snap.Counts.Hold++
	}
	t.snap.Last = &LastGesture{
		Kind:   ev.Kind,
		Count:  ev.Count,
		HeldMs: ev.Held.Milliseconds(),
		At:     ev.Timestamp,
	}
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
