package gesture

import "time"

// Classifier turns raw pin level changes and timer expiries into gesture
// events. It owns the press session state; the caller owns the actual
// timer and must call HandleExpiry when it fires.
//
// At most one press session is active at a time, and the coalescing
// timer is armed iff a session is active or a hold evaluation is still
// pending — both fall out of the single-owner event-handling path.
type Classifier struct {
	window        time.Duration
	holdThreshold time.Duration
	countLimit    int // saturation limit for repeat counts; 0 = unlimited

	timerRunning bool
	buttonDown   bool
	count        int
	pressedAt    time.Time
	havePressed  bool
}

// NewClassifier creates a classifier. window is the coalescing window,
// holdThreshold the minimum down time for a hold, countLimit the
// saturation limit for repeat counts (0 for unlimited).
func NewClassifier(window, holdThreshold time.Duration, countLimit int) *Classifier {
	return &Classifier{
		window:        window,
		holdThreshold: holdThreshold,
		countLimit:    countLimit,
	}
}

// Window returns the duration the coalescing timer should be armed for.
func (c *Classifier) Window() time.Duration {
	return c.window
}

// HandleLevel processes a pin level notification taken at time now.
// pressed is the logical level read after the notification. rearm
// reports whether the caller must restart the coalescing timer for
// Window(), measured from this call.
func (c *Classifier) HandleLevel(pressed bool, now time.Time) (events []Event, rearm bool) {
	if pressed {
		c.buttonDown = true
		events = append(events, Event{Timestamp: now, Kind: Down})

		if !c.timerRunning {
			c.count = 1
			c.timerRunning = true
		} else if c.countLimit == 0 || c.count < c.countLimit {
			c.count++
		}

		c.pressedAt = now
		c.havePressed = true
		return events, true
	}

	if !c.buttonDown {
		// Spurious falling notification; nothing was pressed.
		return nil, false
	}

	c.buttonDown = false
	events = append(events, Event{Timestamp: now, Kind: Up})

	// Hold is decided here, at release time, from the most recent
	// press. It deliberately does not consult the coalescing timer:
	// the timer may already have expired with the button still down.
	if c.havePressed {
		held := now.Sub(c.pressedAt)
		if held >= c.holdThreshold {
			events = append(events, Event{
				Timestamp: now,
				Kind:      Hold,
				Count:     c.count,
				Held:      held,
			})
		}
	}
	return events, false
}

// HandleExpiry processes the coalescing timer firing at time now.
// A click is only reported if the button is currently released; a
// button still held down at expiry suppresses the click, and the
// repeat count survives for a later release's hold evaluation.
func (c *Classifier) HandleExpiry(now time.Time) []Event {
	var events []Event
	if !c.buttonDown {
		events = append(events, Event{Timestamp: now, Kind: Click, Count: c.count})
	}
	c.timerRunning = false
	return events
}
