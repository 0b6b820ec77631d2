//go:build !linux

package gpio

import "errors"

// RealInput is not available on non-Linux platforms.
type RealInput struct{}

// NewRealInput returns an error on non-Linux platforms.
func NewRealInput(pin int, polarity Polarity) (*RealInput, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Changes is not implemented on non-Linux platforms.
func (r *RealInput) Changes() <-chan struct{} {
	return nil
}

// Level is not implemented on non-Linux platforms.
func (r *RealInput) Level() (bool, error) {
	return false, errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *RealInput) Close() error {
	return nil
}
