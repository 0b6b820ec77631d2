// Package gpio provides the monitored button pin with hardware
// abstraction. The real implementation uses the Linux GPIO character
// device with both-edge event detection; the fake allows testing
// without hardware.
package gpio

// Polarity selects how the raw pin level maps to the logical pressed
// state.
type Polarity int

const (
	// PolarityUnspecified requests the line with its default
	// (active-high) sense.
	PolarityUnspecified Polarity = iota
	// PolarityActiveLow treats a low raw level as pressed.
	PolarityActiveLow
	// PolarityActiveHigh treats a high raw level as pressed.
	PolarityActiveHigh
)

// Input is a single monitored button pin.
type Input interface {
	// Changes is signalled whenever the pin level changes, on both
	// rising and falling edges. Consumers must re-read Level after
	// each notification rather than assume a direction.
	Changes() <-chan struct{}

	// Level returns the current logical level, true meaning pressed.
	Level() (bool, error)

	// Close releases the pin.
	Close() error
}

// DefaultPin is the BCM pin number the button ships wired to.
const DefaultPin = 17
