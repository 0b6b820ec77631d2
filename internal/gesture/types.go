// Package gesture contains pure classification logic for button gestures.
// This package has NO external dependencies (no GPIO, timers, or time.Sleep).
// Time is always injectable via time.Time parameters; the caller owns the
// coalescing timer and is told when to (re)arm it.
package gesture

import "time"

// Kind identifies the gesture a sequence of edges was classified as.
type Kind string

const (
	// Down is emitted on every press, before any coalescing.
	Down Kind = "DOWN"
	// Up is emitted on every release.
	Up Kind = "UP"
	// Click is emitted when the coalescing timer expires with the
	// button released; Count carries the number of coalesced presses.
	Click Kind = "CLICK"
	// Hold is emitted at release time when the button was down for at
	// least the hold threshold; Held carries the measured duration.
	Hold Kind = "HOLD"
)

// Event is a classified user interaction.
type Event struct {
	Timestamp time.Time
	Kind      Kind
	// Count is the number of presses coalesced into the gesture.
	// Meaningful for Click and Hold.
	Count int
	// Held is how long the button was down since the most recent
	// press. Meaningful for Hold only.
	Held time.Duration
}

// Default timing values, matching the configs shipped with the daemon.
const (
	// DefaultClickWindow is the coalescing window: presses closer
	// together than this merge into one click count.
	DefaultClickWindow = 400 * time.Millisecond

	// DefaultHoldThreshold is the minimum down time for a release to
	// count as a hold rather than part of a click.
	DefaultHoldThreshold = DefaultClickWindow
)
