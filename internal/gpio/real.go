//go:build linux

package gpio

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/warthog618/go-gpiocdev"
)

const chipName = "gpiochip0"

// RealInput watches a button on actual hardware via the Linux GPIO
// character device.
type RealInput struct {
	line    *gpiocdev.Line
	changes chan struct{}
}

// NewRealInput requests the pin as an input with both-edge event
// detection. Failure to acquire the line is fatal at startup and is
// returned to the caller.
func NewRealInput(pin int, polarity Polarity) (*RealInput, error) {
	if pin < 0 {
		return nil, fmt.Errorf("invalid pin number %d", pin)
	}

	r := &RealInput{
		// Buffered so a slow loop iteration cannot stall the event
		// handler; coalesced notifications are fine because the loop
		// re-reads the level each time.
		changes: make(chan struct{}, 16),
	}

	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(r.handleEvent),
	}
	if polarity == PolarityActiveLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}

	line, err := gpiocdev.RequestLine(chipName, pin, opts...)
	if err != nil {
		return nil, fmt.Errorf("request pin %d on %s: %w", pin, chipName, err)
	}
	r.line = line
	return r, nil
}

func (r *RealInput) handleEvent(gpiocdev.LineEvent) {
	select {
	case r.changes <- struct{}{}:
	default:
		// The loop is behind and will observe the final level when it
		// catches up; dropping the notification loses nothing.
		log.Trace("gpio: change notification coalesced")
	}
}

// Changes returns the level-change notification channel.
func (r *RealInput) Changes() <-chan struct{} {
	return r.changes
}

// Level returns the current logical level, true meaning pressed.
func (r *RealInput) Level() (bool, error) {
	v, err := r.line.Value()
	if err != nil {
		return false, fmt.Errorf("read pin level: %w", err)
	}
	return v != 0, nil
}

// Close releases the line back to the kernel.
func (r *RealInput) Close() error {
	if r.line == nil {
		return nil
	}
	if err := r.line.Close(); err != nil {
		return fmt.Errorf("close line: %w", err)
	}
	return nil
}
